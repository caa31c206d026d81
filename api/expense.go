package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"expense-api/config"
	"expense-api/middleware"
	"expense-api/models"
	"expense-api/repository"
	"expense-api/service"
	"expense-api/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TotalCountHeader 筛选结果不分页的总数
const TotalCountHeader = "X-Total-Count"

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct {
	expenses          *repository.ExpenseRepository
	categories        *repository.CategoryRepository
	uniquePerCategory bool
}

// NewExpenseHandler 创建消费记录处理器
// uniquePerCategory 为 true 时同一用户同一类别只允许一条消费记录
func NewExpenseHandler(db *gorm.DB, uniquePerCategory bool) *ExpenseHandler {
	return &ExpenseHandler{
		expenses:          repository.NewExpenseRepository(db),
		categories:        repository.NewCategoryRepository(db),
		uniquePerCategory: uniquePerCategory,
	}
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 按消费日期倒序返回当前用户的全部记录，包含类别与用户信息
// @Tags 消费记录
// @Produce json
// @Success 200 {array} models.Expense
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "No expenses found"
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenses.List(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "Failed to load expenses"))
		return
	}
	if len(expenses) == 0 {
		NotFound(c, "No expenses found")
		return
	}

	Success(c, expenses)
}

// Get 获取单条消费记录
// @Summary 获取单条消费记录
// @Tags 消费记录
// @Produce json
// @Param id path string true "消费记录ID"
// @Success 200 {object} models.Expense
// @Failure 400 {object} Response "ID 格式错误"
// @Failure 404 {object} Response "Expense not found"
// @Router /api/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	key, err := validation.ExpenseKey(c.Param("id"), middleware.GetCurrentUserID(c))
	if err != nil {
		ValidationError(c, err)
		return
	}

	expense, err := h.expenses.FindOwned(c.Request.Context(), key.ExpenseID, key.UserID)
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}

	Success(c, expense)
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 类别必须属于当前用户；date 缺省为当前时间
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body validation.ExpenseCreateInput true "消费记录信息"
// @Success 200 {object} Response{data=models.Expense} "Create an expense"
// @Failure 400 {object} Response "参数错误或记录已存在"
// @Failure 404 {object} Response "Category not found"
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var in validation.ExpenseCreateInput
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
	if _, err := h.categories.FindOwned(ctx, req.CategoryID, req.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Category not found")
			return
		}
		InternalError(c, config.SafeErrorMessage(err, "Failed to create expense"))
		return
	}

	if h.uniquePerCategory {
		exists, err := h.expenses.ExistsForCategory(ctx, req.UserID, req.CategoryID)
		if err != nil {
			InternalError(c, config.SafeErrorMessage(err, "Failed to create expense"))
			return
		}
		if exists {
			BadRequest(c, "Expense already exists")
			return
		}
	}

	expense := models.Expense{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	}
	if err := h.expenses.Create(ctx, req.UserID, &expense); err != nil {
		InternalError(c, config.SafeErrorMessage(err, "Failed to create expense"))
		return
	}

	SuccessWithMessage(c, "Create an expense", expense)
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Description 仅更新请求中提供的 amount、description、date
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param id path string true "消费记录ID"
// @Param request body validation.ExpenseUpdateInput true "消费记录信息"
// @Success 200 {object} Response "Update an expense"
// @Failure 400 {object} Response "参数错误"
// @Failure 404 {object} Response "Expense not found"
// @Router /api/expenses/{id} [patch]
func (h *ExpenseHandler) Update(c *gin.Context) {
	var in validation.ExpenseUpdateInput
	if err := bindJSON(c, &in); err != nil {
		ValidationError(c, err)
		return
	}
	expenseID, userID := c.Param("id"), middleware.GetCurrentUserID(c)
	in.ExpenseID, in.UserID = &expenseID, &userID

	req, err := in.Validate()
	if err != nil {
		ValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.expenses.FindOwned(ctx, req.ExpenseID, req.UserID); err != nil {
		h.notFoundOrError(c, err)
		return
	}

	fields := map[string]interface{}{}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if err := h.expenses.Update(ctx, req.ExpenseID, req.UserID, fields); err != nil {
		InternalError(c, config.SafeErrorMessage(err, "Failed to update expense"))
		return
	}

	SuccessWithMessage(c, "Update an expense", nil)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Tags 消费记录
// @Produce json
// @Param id path string true "消费记录ID"
// @Success 200 {object} Response "Delete an expense"
// @Failure 400 {object} Response "ID 格式错误"
// @Failure 404 {object} Response "Expense not found"
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	key, err := validation.ExpenseKey(c.Param("id"), middleware.GetCurrentUserID(c))
	if err != nil {
		ValidationError(c, err)
		return
	}

	if err := h.expenses.Delete(c.Request.Context(), key.ExpenseID, key.UserID); err != nil {
		h.notFoundOrError(c, err)
		return
	}

	SuccessWithMessage(c, "Delete an expense", nil)
}

// parseFilter 解析查询参数并填充当前用户
func parseFilter(c *gin.Context) (validation.ExpenseFilter, error) {
	var in validation.ExpenseFilterInput
	if err := c.ShouldBindQuery(&in); err != nil {
		return validation.ExpenseFilter{}, err
	}
	in.UserID = middleware.GetCurrentUserID(c)
	return in.Validate()
}

// Filter 筛选消费记录
// @Summary 筛选消费记录
// @Description 支持类别、金额区间、日期区间、排序字段与分页；响应头 X-Total-Count 为不分页的总数
// @Tags 消费记录
// @Produce json
// @Param categoryId query string false "类别ID"
// @Param minAmount query number false "最小金额"
// @Param maxAmount query number false "最大金额"
// @Param startDate query string false "开始日期 (2024-01-01)"
// @Param endDate query string false "结束日期 (2024-12-31)"
// @Param sortBy query string false "排序字段 date|amount|createdAt" default(date)
// @Param limit query int false "每页数量" default(10)
// @Param page query int false "页码" default(1)
// @Success 200 {array} models.Expense
// @Failure 400 {object} Response "参数错误"
// @Failure 404 {object} Response "No expenses found"
// @Router /api/expenses/filter [get]
func (h *ExpenseHandler) Filter(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		ValidationError(c, err)
		return
	}

	expenses, total, err := h.expenses.Filter(c.Request.Context(), filter)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "Failed to filter expenses"))
		return
	}
	if len(expenses) == 0 {
		NotFound(c, "No expenses found")
		return
	}

	c.Header(TotalCountHeader, strconv.FormatInt(total, 10))
	Success(c, expenses)
}

// Summary 消费汇总
// @Summary 消费汇总
// @Description 按类别汇总金额、笔数与占比，筛选参数同 /api/expenses/filter（忽略分页）
// @Tags 消费记录
// @Produce json
// @Param categoryId query string false "类别ID"
// @Param startDate query string false "开始日期 (2024-01-01)"
// @Param endDate query string false "结束日期 (2024-12-31)"
// @Success 200 {object} service.ExpenseSummary
// @Failure 400 {object} Response "参数错误"
// @Router /api/expenses/summary [get]
func (h *ExpenseHandler) Summary(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		ValidationError(c, err)
		return
	}

	rows, err := h.expenses.TotalsByCategory(c.Request.Context(), filter)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "Failed to summarize expenses"))
		return
	}

	Success(c, service.Summarize(rows))
}

// Export 导出消费记录
// @Summary 导出消费记录
// @Description 导出全部匹配记录为 Excel 文件，筛选参数同 /api/expenses/filter（忽略分页）
// @Tags 消费记录
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param startDate query string false "开始日期 (2024-01-01)"
// @Param endDate query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "参数错误"
// @Router /api/expenses/export [get]
func (h *ExpenseHandler) Export(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		ValidationError(c, err)
		return
	}

	expenses, err := h.expenses.Export(c.Request.Context(), filter)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "Failed to export expenses"))
		return
	}

	// 先写入缓冲区，生成失败时仍可返回 JSON 错误
	var buf bytes.Buffer
	if err := service.WriteExpenseWorkbook(&buf, expenses); err != nil {
		InternalError(c, config.SafeErrorMessage(err, "Failed to export expenses"))
		return
	}

	filename := fmt.Sprintf("expenses_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *ExpenseHandler) notFoundOrError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		NotFound(c, "Expense not found")
		return
	}
	InternalError(c, config.SafeErrorMessage(err, "Database error"))
}
