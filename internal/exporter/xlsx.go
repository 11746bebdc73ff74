// =============================================================================
// Sales Analytics - Enriched Dataset Exporter
// =============================================================================
//
// Writes the enriched transaction set to an XLSX workbook. The dump is a
// debug/intermediate artifact: one header row, one row per enriched record,
// base fields first and enrichment fields last.
//
// =============================================================================

package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// SheetName is the worksheet holding the enriched records.
const SheetName = "Enriched"

// dumpHeaders is the fixed column order of the dump.
var dumpHeaders = []string{
	"TransactionID",
	"Date",
	"ProductID",
	"ProductName",
	"Quantity",
	"UnitPrice",
	"CustomerID",
	"Region",
	"ConvertedUnitPrice",
	"ConvertedAmount",
	"RegionManager",
}

// WriteEnrichedXLSX writes the enriched records to an XLSX workbook at the
// given path. The write is whole-document: the file appears only on success.
func WriteEnrichedXLSX(path string, enriched []types.EnrichedTransaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	if err := writeRow(f, 1, headerCells()); err != nil {
		return err
	}

	for i, txn := range enriched {
		if err := writeRow(f, i+2, recordCells(txn)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write enriched dump: %w", err)
	}
	return nil
}

// headerCells returns the header row values.
func headerCells() []interface{} {
	cells := make([]interface{}, len(dumpHeaders))
	for i, h := range dumpHeaders {
		cells[i] = h
	}
	return cells
}

// recordCells flattens an enriched record into the fixed column order.
func recordCells(txn types.EnrichedTransaction) []interface{} {
	return []interface{}{
		txn.TransactionID,
		txn.Date,
		txn.ProductID,
		txn.ProductName,
		txn.Quantity,
		txn.UnitPrice.InexactFloat64(),
		txn.CustomerID,
		txn.Region,
		txn.ConvertedUnitPrice.InexactFloat64(),
		txn.ConvertedAmount.InexactFloat64(),
		txn.Manager,
	}
}

// writeRow writes one row of values starting at column A.
func writeRow(f *excelize.File, row int, cells []interface{}) error {
	for col, value := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to address cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
