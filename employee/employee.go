// Package employee writes generated employee records to local files.
package employee

import "github.com/orayew2002/fkemployee/domain"

// Writer streams records to a destination, one row at a time.
// WriteHeader must be called before the first Write; Close finalizes the output.
type Writer interface {
	WriteHeader() error
	Write(e domain.Employee) error
	Close() error
	Path() string
}
