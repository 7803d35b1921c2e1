package employee

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/orayew2002/fkemployee/domain"
)

// CSVWriter writes records as comma-separated, CRLF-terminated rows with a header.
type CSVWriter struct {
	path string
	file *os.File
	w    *csv.Writer
}

// NewCSVWriter creates (or truncates) the file at path.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	w.UseCRLF = true

	return &CSVWriter{path: path, file: f, w: w}, nil
}

func (c *CSVWriter) Path() string {
	return c.path
}

func (c *CSVWriter) WriteHeader() error {
	if err := c.w.Write(domain.Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

func (c *CSVWriter) Write(e domain.Employee) error {
	if err := c.w.Write(e.Values()); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (c *CSVWriter) Close() error {
	c.w.Flush()
	flushErr := c.w.Error()
	closeErr := c.file.Close()

	if flushErr != nil {
		return fmt.Errorf("flush %s: %w", c.path, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", c.path, closeErr)
	}
	return nil
}
