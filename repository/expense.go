package repository

import (
	"context"

	"expense-api/models"
	"expense-api/validation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns 排序字段白名单
var sortColumns = map[string]string{
	"date":      "date",
	"amount":    "amount",
	"createdAt": "created_at",
}

// ExpenseRepository 消费记录数据访问，所有读写都限定在所属用户内
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) expanded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Category").Preload("User")
}

// List 按消费日期倒序返回用户的全部记录
func (r *ExpenseRepository) List(ctx context.Context, userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.expanded(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *ExpenseRepository) FindOwned(ctx context.Context, id, userID string) (*models.Expense, error) {
	var expense models.Expense
	err := r.expanded(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error
	if err != nil {
		return nil, translate(err)
	}
	return &expense, nil
}

// ExistsForCategory 用户在该类别下是否已有消费记录
func (r *ExpenseRepository) ExistsForCategory(ctx context.Context, userID, categoryID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count).Error
	return count > 0, err
}

// Create 写入前设置所属用户
func (r *ExpenseRepository) Create(ctx context.Context, userID string, expense *models.Expense) error {
	expense.UserID = userID
	return translate(r.db.WithContext(ctx).Create(expense).Error)
}

func (r *ExpenseRepository) Update(ctx context.Context, id, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
	return translate(err)
}

// Delete 记录不存在或不属于该用户时返回 ErrNotFound
func (r *ExpenseRepository) Delete(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Expense{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// where 组装筛选条件，列名带表前缀以便与类别表关联查询
func (r *ExpenseRepository) where(ctx context.Context, f validation.ExpenseFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Expense{}).Where("expenses.user_id = ?", f.UserID)
	if f.CategoryID != "" {
		q = q.Where("expenses.category_id = ?", f.CategoryID)
	}
	if f.MinAmount != nil {
		q = q.Where("expenses.amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("expenses.amount <= ?", *f.MaxAmount)
	}
	if f.StartDate != nil {
		q = q.Where("expenses.date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("expenses.date <= ?", *f.EndDate)
	}
	return q
}

func orderBy(sortBy string) clause.OrderByColumn {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = sortColumns["date"]
	}
	return clause.OrderByColumn{Column: clause.Column{Table: "expenses", Name: column}, Desc: true}
}

// Filter 返回当前页记录以及不分页的匹配总数
func (r *ExpenseRepository) Filter(ctx context.Context, f validation.ExpenseFilter) ([]models.Expense, int64, error) {
	var total int64
	if err := r.where(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, nil
	}

	var expenses []models.Expense
	err := r.where(ctx, f).
		Preload("Category").
		Preload("User").
		Order(orderBy(f.SortBy)).
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&expenses).Error
	if err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

// Export 返回全部匹配记录，忽略分页
func (r *ExpenseRepository) Export(ctx context.Context, f validation.ExpenseFilter) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.where(ctx, f).
		Preload("Category").
		Order(orderBy(f.SortBy)).
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// CategoryTotal 单个类别的汇总
type CategoryTotal struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	ColorCode  string  `json:"colorCode"`
	Total      float64 `json:"total"`
	Count      int64   `json:"count"`
}

// TotalsByCategory 按类别汇总金额与笔数，金额从高到低
func (r *ExpenseRepository) TotalsByCategory(ctx context.Context, f validation.ExpenseFilter) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	err := r.where(ctx, f).
		Select("expenses.category_id AS category_id, categories.name AS name, categories.type AS type, " +
			"categories.color_code AS color_code, SUM(expenses.amount) AS total, COUNT(*) AS count").
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id").
		Group("expenses.category_id, categories.name, categories.type, categories.color_code").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
