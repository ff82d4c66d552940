// Package export writes style catalog summaries to spreadsheet files.
package export

import (
	"fmt"

	"github.com/piwi3910/figlayout/internal/style"
	"github.com/xuri/excelize/v2"
)

// catalogSheet is the worksheet name used for the style catalog.
const catalogSheet = "Styles"

// catalogHeader lists the catalog columns in order.
var catalogHeader = []string{
	"Name", "Column Width", "Gutter Width", "Max Width", "Max Height", "Units",
	"Label Case", "Label Prefix", "Label Suffix",
}

// WriteCatalog writes one row per style config into an xlsx workbook at
// the given path. Styles without figsize or panel label rules get blank
// cells for the corresponding columns.
func WriteCatalog(path string, configs []*style.Config) error {
	if len(configs) == 0 {
		return fmt.Errorf("no styles to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", catalogSheet); err != nil {
		return fmt.Errorf("failed to name catalog sheet: %w", err)
	}

	for col, h := range catalogHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(catalogSheet, cell, h); err != nil {
			return err
		}
	}

	for i, cfg := range configs {
		row := catalogRow(cfg)
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(catalogSheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}

// catalogRow flattens one config into catalog cell values.
func catalogRow(cfg *style.Config) []any {
	row := make([]any, len(catalogHeader))
	row[0] = cfg.Name
	for i := 1; i < len(row); i++ {
		row[i] = ""
	}
	if fs := cfg.Figsize; fs != nil {
		row[1] = fs.ColumnWidth
		row[2] = fs.GutterWidth
		row[3] = fs.MaxWidth
		row[4] = fs.MaxHeight
		row[5] = fs.Units
	}
	if pl := cfg.PanelLabels; pl != nil {
		row[6] = pl.Case
		row[7] = pl.Prefix
		row[8] = pl.Suffix
	}
	return row
}
