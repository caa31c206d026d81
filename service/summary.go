package service

import (
	"expense-api/repository"

	"github.com/shopspring/decimal"
)

// CategoryShare 单个类别的金额与占比
type CategoryShare struct {
	CategoryID string          `json:"categoryId"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	ColorCode  string          `json:"colorCode"`
	Total      decimal.Decimal `json:"total"`
	Count      int64           `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ExpenseSummary 消费汇总
type ExpenseSummary struct {
	Total      decimal.Decimal `json:"total"`
	Count      int64           `json:"count"`
	Categories []CategoryShare `json:"categories"`
}

// Summarize 计算总额与各类别占比，金额保留两位小数
func Summarize(rows []repository.CategoryTotal) ExpenseSummary {
	summary := ExpenseSummary{
		Total:      decimal.Zero,
		Categories: make([]CategoryShare, 0, len(rows)),
	}
	for _, row := range rows {
		summary.Total = summary.Total.Add(decimal.NewFromFloat(row.Total))
		summary.Count += row.Count
	}
	summary.Total = summary.Total.Round(2)

	hundred := decimal.NewFromInt(100)
	for _, row := range rows {
		total := decimal.NewFromFloat(row.Total).Round(2)
		pct := decimal.Zero
		if !summary.Total.IsZero() {
			pct = total.Div(summary.Total).Mul(hundred).Round(2)
		}
		summary.Categories = append(summary.Categories, CategoryShare{
			CategoryID: row.CategoryID,
			Name:       row.Name,
			Type:       row.Type,
			ColorCode:  row.ColorCode,
			Total:      total,
			Count:      row.Count,
			Percentage: pct,
		})
	}
	return summary
}
