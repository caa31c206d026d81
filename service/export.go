package service

import (
	"fmt"
	"io"

	"expense-api/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportSheetName 导出工作表名称
const ExportSheetName = "Expenses"

var exportHeaders = []string{"ID", "Date", "Category", "Type", "Amount", "Description", "Created At"}

// WriteExpenseWorkbook 将消费记录写成 xlsx，最后一行为合计
func WriteExpenseWorkbook(w io.Writer, expenses []models.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return err
	}
	dataStyle, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return err
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return err
	}

	widths := map[string]float64{"A": 28, "B": 20, "C": 18, "D": 10, "E": 12, "F": 36, "G": 20}
	for col, width := range widths {
		if err := f.SetColWidth(ExportSheetName, col, col, width); err != nil {
			return err
		}
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ExportSheetName, cell, header)
	}
	f.SetCellStyle(ExportSheetName, "A1", "G1", headerStyle)

	total := decimal.Zero
	for i, e := range expenses {
		row := i + 2
		var categoryName, categoryType string
		if e.Category != nil {
			categoryName, categoryType = e.Category.Name, e.Category.Type
		}
		values := []interface{}{
			e.ID,
			e.Date.Format("2006-01-02 15:04:05"),
			categoryName,
			categoryType,
			e.Amount,
			e.Description,
			e.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		start := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(ExportSheetName, start, &values); err != nil {
			return err
		}
		f.SetCellStyle(ExportSheetName, start, fmt.Sprintf("G%d", row), dataStyle)
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}

	summaryRow := len(expenses) + 2
	f.SetCellValue(ExportSheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.MergeCell(ExportSheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("D%d", summaryRow))
	f.SetCellValue(ExportSheetName, fmt.Sprintf("E%d", summaryRow), total.Round(2).InexactFloat64())
	f.SetCellValue(ExportSheetName, fmt.Sprintf("F%d", summaryRow), fmt.Sprintf("%d records", len(expenses)))
	f.MergeCell(ExportSheetName, fmt.Sprintf("F%d", summaryRow), fmt.Sprintf("G%d", summaryRow))
	f.SetCellStyle(ExportSheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("G%d", summaryRow), summaryStyle)

	return f.Write(w)
}
