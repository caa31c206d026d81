package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"

	// DefaultColorCode 未指定颜色时使用
	DefaultColorCode = "#000000"
)

// Category 用户自定义类别，名称在同一用户下唯一
type Category struct {
	ID          string       `json:"id" gorm:"primaryKey;size:24"`
	UserID      string       `json:"userId" gorm:"size:24;not null;uniqueIndex:idx_categories_user_name;index"`
	User        *UserSummary `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name        string       `json:"name" gorm:"size:255;not null;uniqueIndex:idx_categories_user_name"`
	Description string       `json:"description" gorm:"type:text"`
	Type        string       `json:"type" gorm:"size:10;not null"`
	ColorCode   string       `json:"colorCode" gorm:"size:20;not null;default:#000000"`
	CreatedAt   time.Time    `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}

// BeforeCreate 分配标识符并补全默认颜色
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	if c.ColorCode == "" {
		c.ColorCode = DefaultColorCode
	}
	return nil
}

// CategorySummary 展开到消费记录中的类别信息
type CategorySummary struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	ColorCode   string `json:"colorCode"`
	Description string `json:"description"`
}

func (CategorySummary) TableName() string {
	return "categories"
}
