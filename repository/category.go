package repository

import (
	"context"

	"expense-api/models"

	"gorm.io/gorm"
)

// CategoryRepository 类别数据访问，所有读写都限定在所属用户内
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) owned(ctx context.Context, userID string) *gorm.DB {
	return r.db.WithContext(ctx).Where("user_id = ?", userID)
}

// List 按创建时间倒序返回用户的全部类别
func (r *CategoryRepository) List(ctx context.Context, userID string) ([]models.Category, error) {
	var categories []models.Category
	err := r.owned(ctx, userID).
		Preload("User").
		Order("created_at DESC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// FindOwned 查询属于 userID 的类别
func (r *CategoryRepository) FindOwned(ctx context.Context, id, userID string) (*models.Category, error) {
	var category models.Category
	err := r.owned(ctx, userID).
		Preload("User").
		Where("id = ?", id).
		First(&category).Error
	if err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

// FindByName 同一用户下按名称查询
func (r *CategoryRepository) FindByName(ctx context.Context, userID, name string) (*models.Category, error) {
	var category models.Category
	if err := r.owned(ctx, userID).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

// Create 写入前设置所属用户
func (r *CategoryRepository) Create(ctx context.Context, userID string, category *models.Category) error {
	category.UserID = userID
	return translate(r.db.WithContext(ctx).Create(category).Error)
}

// Update 按字段部分更新
func (r *CategoryRepository) Update(ctx context.Context, id, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
	return translate(err)
}

// Delete 记录不存在或不属于该用户时返回 ErrNotFound
func (r *CategoryRepository) Delete(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
