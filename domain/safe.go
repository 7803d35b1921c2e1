package domain

import (
	"fmt"
	"strings"
)

// Defaults substituted when a field cannot be generated.
const (
	DefaultText   = "N/A"
	DefaultSalary = 0
)

var sanitizer = strings.NewReplacer(`"`, "", ",", "")

// Sanitize strips double quotes and commas.
func Sanitize(s string) string {
	return sanitizer.Replace(s)
}

// Safe calls fn once and returns its value, or def when fn fails, panics
// or returns the zero value. String values are sanitized.
func Safe[T comparable](fn func() (T, error), def T) T {
	v, err := try(fn)
	var zero T
	if err != nil || v == zero {
		return def
	}

	if s, ok := any(v).(string); ok {
		clean := Sanitize(s)
		if clean == "" {
			return def
		}
		return any(clean).(T)
	}

	return v
}

func try[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generator panic: %v", r)
		}
	}()
	return fn()
}
