package employee

import (
	"fmt"

	"github.com/orayew2002/fkemployee/domain"
	excelize "github.com/xuri/excelize/v2"
)

const sheet = "Sheet1"

// widths defines the column widths for the employee table, in header order.
var widths = []float64{16, 16, 30, 32, 24, 10, 12}

// XLSXWriter streams records into an Excel workbook saved on Close.
type XLSXWriter struct {
	path string
	f    *excelize.File
	sw   *excelize.StreamWriter
	row  int
}

// NewXLSXWriter prepares a new workbook that will be saved to path.
func NewXLSXWriter(path string) (*XLSXWriter, error) {
	f := excelize.NewFile()

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stream writer: %w", err)
	}

	if err := autoFitColumns(sw); err != nil {
		f.Close()
		return nil, fmt.Errorf("auto fit columns: %w", err)
	}

	return &XLSXWriter{path: path, f: f, sw: sw, row: 1}, nil
}

func (x *XLSXWriter) Path() string {
	return x.path
}

func (x *XLSXWriter) WriteHeader() error {
	style, err := x.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	header := domain.Header()
	values := make([]any, len(header))
	for i, h := range header {
		values[i] = h
	}

	if err := x.setRow(values, excelize.RowOpts{StyleID: style}); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	return nil
}

func (x *XLSXWriter) Write(e domain.Employee) error {
	if err := x.setRow(e.Cells()); err != nil {
		return fmt.Errorf("row %d: %w", x.row, err)
	}
	return nil
}

// Close flushes the stream and saves the workbook.
func (x *XLSXWriter) Close() error {
	defer x.f.Close()

	if err := x.sw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	if err := x.f.SaveAs(x.path); err != nil {
		return fmt.Errorf("save %s: %w", x.path, err)
	}

	return nil
}

func (x *XLSXWriter) setRow(values []any, opts ...excelize.RowOpts) error {
	cell, err := excelize.CoordinatesToCellName(1, x.row)
	if err != nil {
		return err
	}

	if err := x.sw.SetRow(cell, values, opts...); err != nil {
		return err
	}

	x.row++
	return nil
}

func autoFitColumns(sw *excelize.StreamWriter) error {
	for col, w := range widths {
		if err := sw.SetColWidth(col+1, col+1, w); err != nil {
			return err
		}
	}
	return nil
}
