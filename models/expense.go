package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense 消费记录模型
type Expense struct {
	ID          string           `json:"id" gorm:"primaryKey;size:24"`
	UserID      string           `json:"userId" gorm:"size:24;not null;index"`
	User        *UserSummary     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CategoryID  string           `json:"categoryId" gorm:"size:24;not null;index"`
	Category    *CategorySummary `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Amount      float64          `json:"amount" gorm:"type:decimal(12,2);not null"`
	Description string           `json:"description" gorm:"type:text"`
	Date        time.Time        `json:"date" gorm:"not null;index"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// BeforeCreate 分配标识符，未指定日期时取创建时间
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = NewID()
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	return nil
}
