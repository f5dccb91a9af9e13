// Package report serializes the daily sales aggregation into a spreadsheet.
package report

import (
	"fmt"

	"pos-backend/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sales Report"

// BuildSalesXLSX renders one row per daily bucket, in the order supplied.
// The caller streams the file; nothing touches disk.
func BuildSalesXLSX(rows []models.DailySales) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheetName, "A1", &[]interface{}{"Date", "Total Sales"}); err != nil {
		return nil, err
	}
	for i, r := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &[]interface{}{r.Date, r.TotalAmount}); err != nil {
			return nil, err
		}
	}
	return f, nil
}
