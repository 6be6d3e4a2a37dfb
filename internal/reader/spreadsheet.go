// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellKind enumerates the primitive kinds a spreadsheet cell can hold.
type CellKind int

const (
	CellNull CellKind = iota
	CellString
	CellNumber
	CellBool
)

// CellValue is a closed sum over the payloads a sheet actually produces: a
// string, a number, a boolean, or nothing. Exactly the field selected by
// Kind is meaningful.
type CellValue struct {
	Kind CellKind
	Str  string
	Num  float64
	Bool bool
}

// String renders the value canonically: numbers without a trailing zero
// fraction, booleans as true/false, null as the empty string.
func (v CellValue) String() string {
	switch v.Kind {
	case CellString:
		return v.Str
	case CellNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case CellBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// classifyCell maps a raw formatted cell and its declared type to a
// CellValue. Numeric cells in xlsx carry no explicit type marker, so
// anything that parses as a number counts as one unless the type says
// otherwise.
func classifyCell(raw string, cellType excelize.CellType) CellValue {
	if raw == "" {
		return CellValue{Kind: CellNull}
	}
	if cellType == excelize.CellTypeBool {
		return CellValue{Kind: CellBool, Bool: raw == "TRUE" || raw == "true" || raw == "1"}
	}
	if cellType == excelize.CellTypeInlineString || cellType == excelize.CellTypeSharedString {
		return CellValue{Kind: CellString, Str: raw}
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return CellValue{Kind: CellNumber, Num: n}
	}
	return CellValue{Kind: CellString, Str: raw}
}

// readSpreadsheet renders every sheet as tab-separated lines under a
// "# <sheet>" heading.
func readSpreadsheet(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("reading sheet %s: %w", sheet, err)
		}
		fmt.Fprintf(&sb, "# %s\n", sheet)
		for ri, row := range rows {
			cells := make([]string, len(row))
			for ci, raw := range row {
				axis, err := excelize.CoordinatesToCellName(ci+1, ri+1)
				if err != nil {
					return "", fmt.Errorf("cell name for %s row %d col %d: %w", sheet, ri+1, ci+1, err)
				}
				cellType, err := f.GetCellType(sheet, axis)
				if err != nil {
					return "", fmt.Errorf("cell type of %s!%s: %w", sheet, axis, err)
				}
				cells[ci] = classifyCell(raw, cellType).String()
			}
			sb.WriteString(strings.Join(cells, "\t"))
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
