package domain

import (
	"fmt"
	"strconv"
)

// Employee is a single synthetic employee record.
type Employee struct {
	FirstName   string
	LastName    string
	Department  string
	Email       string
	PhoneNumber string
	Salary      int
	Password    string
}

// column describes one output column: header name + typed value extractor.
type column struct {
	name  string
	value func(e Employee) any
}

// columns defines the output columns in order.
var columns = []column{
	{name: "first_name", value: func(e Employee) any { return e.FirstName }},
	{name: "last_name", value: func(e Employee) any { return e.LastName }},
	{name: "department", value: func(e Employee) any { return e.Department }},
	{name: "email", value: func(e Employee) any { return e.Email }},
	{name: "phone_number", value: func(e Employee) any { return e.PhoneNumber }},
	{name: "salary", value: func(e Employee) any { return e.Salary }},
	{name: "password", value: func(e Employee) any { return e.Password }},
}

// Header returns the column names in output order.
func Header() []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.name
	}
	return names
}

// Cells returns the record's fields with their native types (salary stays
// an int), in the same order as Header.
func (e Employee) Cells() []any {
	cells := make([]any, len(columns))
	for i, c := range columns {
		cells[i] = c.value(e)
	}
	return cells
}

// Values returns the record's fields as strings, in the same order as Header.
func (e Employee) Values() []string {
	values := make([]string, len(columns))
	for i, v := range e.Cells() {
		switch v := v.(type) {
		case string:
			values[i] = v
		case int:
			values[i] = strconv.Itoa(v)
		default:
			values[i] = fmt.Sprint(v)
		}
	}
	return values
}
