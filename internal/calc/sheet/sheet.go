package sheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	radar "Radar/internal/calc/radar"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Radar"

// Export writes one row per radar field: field, value, unit.
// Absent values leave the value cell empty.
func Export(p *radar.Parameters) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetSheetRow(SheetName, "A1", &[]any{"field", "value", "unit"}); err != nil {
		f.Close()
		return nil, err
	}
	for i, fld := range radar.Fields {
		v, _ := p.Get(fld.Name)
		cells := []any{fld.Name, nil, fld.Unit}
		if v != nil {
			if !radar.IsFinite(*v) {
				f.Close()
				return nil, fmt.Errorf("%w: %s", radar.ErrNonFinite, fld.Name)
			}
			cells[1] = *v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// Import reads the first sheet of a workbook laid out like Export.
func Import(r io.Reader) (radar.Input, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return radar.Input{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return radar.Input{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return radar.Input{}, fmt.Errorf("empty sheet")
	}

	p := radar.New(radar.Input{})
	seen := make(map[string]int)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		name := strings.TrimSpace(row[0])
		if prev, ok := seen[name]; ok {
			return radar.Input{}, fmt.Errorf("row %d: field %q already set in row %d", i+1, name, prev)
		}
		seen[name] = i + 1
		var v *float64
		if len(row) > 1 && strings.TrimSpace(row[1]) != "" {
			x, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
			if err != nil {
				return radar.Input{}, fmt.Errorf("row %d: %s: %w", i+1, name, err)
			}
			v = &x
		}
		if err := p.Set(name, v); err != nil {
			return radar.Input{}, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return p.Input(), nil
}
