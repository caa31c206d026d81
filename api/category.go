package api

import (
	"errors"

	"expense-api/config"
	"expense-api/middleware"
	"expense-api/models"
	"expense-api/repository"
	"expense-api/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler 类别处理器
type CategoryHandler struct {
	categories *repository.CategoryRepository
}

// NewCategoryHandler 创建类别处理器
func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{categories: repository.NewCategoryRepository(db)}
}

// List 获取类别列表
// @Summary 获取类别列表
// @Description 按创建时间倒序返回当前用户的类别，包含所属用户信息
// @Tags 类别
// @Produce json
// @Success 200 {array} models.Category
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "No categories found"
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	categories, err := h.categories.List(c.Request.Context(), userID)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "Failed to load categories"))
		return
	}
	if len(categories) == 0 {
		NotFound(c, "No categories found")
		return
	}

	Success(c, categories)
}

// Get 获取单个类别
// @Summary 获取单个类别
// @Tags 类别
// @Produce json
// @Param id path string true "类别ID"
// @Success 200 {object} models.Category
// @Failure 400 {object} Response "ID 格式错误"
// @Failure 404 {object} Response "Category not found"
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	key, err := validation.CategoryKey(c.Param("id"), middleware.GetCurrentUserID(c))
	if err != nil {
		ValidationError(c, err)
		return
	}

	category, err := h.categories.FindOwned(c.Request.Context(), key.CategoryID, key.UserID)
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}

	Success(c, category)
}

// Create 创建类别
// @Summary 创建类别
// @Description 名称会被转为小写，同一用户下不可重复；colorCode 默认为 #000000
// @Tags 类别
// @Accept json
// @Produce json
// @Param request body validation.CategoryCreateInput true "类别信息"
// @Success 200 {object} Response{data=models.Category} "Create category"
// @Failure 400 {object} Response "参数错误或类别已存在"
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var in validation.CategoryCreateInput
	if err := bindJSON(c, &in); err != nil {
		ValidationError(c, err)
		return
	}
	userID := middleware.GetCurrentUserID(c)
	in.UserID = &userID

	req, err := in.Validate()
	if err != nil {
		ValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.categories.FindByName(ctx, req.UserID, req.Name); err == nil {
		BadRequest(c, "Category already exists")
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		InternalError(c, config.SafeErrorMessage(err, "Failed to create category"))
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		ColorCode:   req.ColorCode,
	}
	if err := h.categories.Create(ctx, req.UserID, &category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			BadRequest(c, "Category already exists")
			return
		}
		InternalError(c, config.SafeErrorMessage(err, "Failed to create category"))
		return
	}

	SuccessWithMessage(c, "Create category", category)
}

// Update 更新类别
// @Summary 更新类别
// @Description 仅更新请求中提供的字段
// @Tags 类别
// @Accept json
// @Produce json
// @Param id path string true "类别ID"
// @Param request body validation.CategoryUpdateInput true "类别信息"
// @Success 200 {object} Response "Update category"
// @Failure 400 {object} Response "参数错误"
// @Failure 404 {object} Response "Category not found"
// @Router /api/categories/{id} [patch]
func (h *CategoryHandler) Update(c *gin.Context) {
	var in validation.CategoryUpdateInput
	if err := bindJSON(c, &in); err != nil {
		ValidationError(c, err)
		return
	}
	categoryID, userID := c.Param("id"), middleware.GetCurrentUserID(c)
	in.CategoryID, in.UserID = &categoryID, &userID

	req, err := in.Validate()
	if err != nil {
		ValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.categories.FindOwned(ctx, req.CategoryID, req.UserID); err != nil {
		h.notFoundOrError(c, err)
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.ColorCode != nil {
		fields["color_code"] = *req.ColorCode
	}
	if err := h.categories.Update(ctx, req.CategoryID, req.UserID, fields); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			BadRequest(c, "Category already exists")
			return
		}
		InternalError(c, config.SafeErrorMessage(err, "Failed to update category"))
		return
	}

	SuccessWithMessage(c, "Update category", nil)
}

// Delete 删除类别
// @Summary 删除类别
// @Tags 类别
// @Produce json
// @Param id path string true "类别ID"
// @Success 200 {object} Response "Delete category"
// @Failure 400 {object} Response "ID 格式错误"
// @Failure 404 {object} Response "Category not found"
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	key, err := validation.CategoryKey(c.Param("id"), middleware.GetCurrentUserID(c))
	if err != nil {
		ValidationError(c, err)
		return
	}

	if err := h.categories.Delete(c.Request.Context(), key.CategoryID, key.UserID); err != nil {
		h.notFoundOrError(c, err)
		return
	}

	SuccessWithMessage(c, "Delete category", nil)
}

func (h *CategoryHandler) notFoundOrError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		NotFound(c, "Category not found")
		return
	}
	InternalError(c, config.SafeErrorMessage(err, "Database error"))
}
