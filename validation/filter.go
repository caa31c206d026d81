package validation

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage 限制偏移量，避免 (page-1)*limit 溢出
	MaxPage = 1000000
)

// ExpenseFilterInput 消费记录筛选查询参数
type ExpenseFilterInput struct {
	UserID     string `json:"userId" form:"-" validate:"required,len=24"`
	CategoryID string `form:"categoryId" validate:"omitempty,len=24"`
	MinAmount  string `form:"minAmount"`
	MaxAmount  string `form:"maxAmount"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	SortBy     string `form:"sortBy" validate:"omitempty,oneof=date amount createdAt"`
	Limit      string `form:"limit"`
	Page       string `form:"page"`
}

// ExpenseFilter 金额与日期范围均为闭区间，nil 表示不限
type ExpenseFilter struct {
	UserID     string
	CategoryID string
	MinAmount  *float64
	MaxAmount  *float64
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	Limit      int
	Page       int
}

// Offset 分页偏移量
func (f ExpenseFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

func (in ExpenseFilterInput) Validate() (ExpenseFilter, error) {
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	in.SortBy = strings.TrimSpace(in.SortBy)
	if err := check(&in); err != nil {
		return ExpenseFilter{}, err
	}

	out := ExpenseFilter{
		UserID:     in.UserID,
		CategoryID: in.CategoryID,
		SortBy:     in.SortBy,
		Limit:      DefaultLimit,
		Page:       1,
	}
	if out.SortBy == "" {
		out.SortBy = "date"
	}

	var err error
	if out.MinAmount, err = parseAmount("minAmount", in.MinAmount); err != nil {
		return ExpenseFilter{}, err
	}
	if out.MaxAmount, err = parseAmount("maxAmount", in.MaxAmount); err != nil {
		return ExpenseFilter{}, err
	}
	if out.MinAmount != nil && out.MaxAmount != nil && *out.MinAmount > *out.MaxAmount {
		return ExpenseFilter{}, &Error{Field: "minAmount", Message: "minAmount must not be greater than maxAmount"}
	}

	if out.StartDate, err = parseDate("startDate", in.StartDate, false); err != nil {
		return ExpenseFilter{}, err
	}
	if out.EndDate, err = parseDate("endDate", in.EndDate, true); err != nil {
		return ExpenseFilter{}, err
	}
	if out.StartDate != nil && out.EndDate != nil && out.StartDate.After(*out.EndDate) {
		return ExpenseFilter{}, &Error{Field: "startDate", Message: "startDate must not be after endDate"}
	}

	if in.Limit != "" {
		if out.Limit, err = parsePositiveInt("limit", in.Limit); err != nil {
			return ExpenseFilter{}, err
		}
		if out.Limit > MaxLimit {
			out.Limit = MaxLimit
		}
	}
	if in.Page != "" {
		if out.Page, err = parsePositiveInt("page", in.Page); err != nil {
			return ExpenseFilter{}, err
		}
		if out.Page > MaxPage {
			return ExpenseFilter{}, &Error{Field: "page", Message: "page must not be greater than 1000000"}
		}
	}
	return out, nil
}

func parseAmount(field, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, &Error{Field: field, Message: field + " must be a non-negative number"}
	}
	return &v, nil
}

// parseDate 支持 2006-01-02 与 RFC3339；纯日期的结束时间包含当天
func parseDate(field, raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, &Error{Field: field, Message: field + " must be a valid date (YYYY-MM-DD)"}
	}
	return &t, nil
}

func parsePositiveInt(field, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return 0, &Error{Field: field, Message: field + " must be a positive integer"}
	}
	return v, nil
}
