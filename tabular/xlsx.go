package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// parseXLSX reads the first sheet of a workbook. Later sheets are ignored.
func parseXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %w", ErrParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %w", ErrParse, sheets[0], err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return buildRows(records[0], records[1:]), nil
}
