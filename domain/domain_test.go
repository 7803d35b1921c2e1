package domain

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource returns fixed values; failDepartmentOn makes the department
// call with that 0-based index fail.
type stubSource struct {
	failDepartmentOn int
	departmentCalls  int
	panicOnEmail     bool
}

func (s *stubSource) FirstName() (string, error) { return `Jo"hn`, nil }
func (s *stubSource) LastName() (string, error)  { return "Doe, Jr", nil }

func (s *stubSource) Department() (string, error) {
	n := s.departmentCalls
	s.departmentCalls++
	if n == s.failDepartmentOn {
		return "", errors.New("department unavailable")
	}
	return "Engineering", nil
}

func (s *stubSource) Email() (string, error) {
	if s.panicOnEmail {
		panic("boom")
	}
	return "john@example.com", nil
}

func (s *stubSource) PhoneNumber() (string, error) { return "555-0100", nil }
func (s *stubSource) Salary() (int, error)         { return 54321, nil }

func TestHeader(t *testing.T) {
	assert.Equal(t,
		[]string{"first_name", "last_name", "department", "email", "phone_number", "salary", "password"},
		Header())
}

func TestValues_Order(t *testing.T) {
	e := Employee{
		FirstName:   "Ann",
		LastName:    "Lee",
		Department:  "Ops",
		Email:       "ann@example.com",
		PhoneNumber: "123",
		Salary:      12345,
		Password:    "abcd1234",
	}

	assert.Equal(t, []string{"Ann", "Lee", "Ops", "ann@example.com", "123", "12345", "abcd1234"}, e.Values())
}

func TestCells_MatchValues(t *testing.T) {
	e := Employee{FirstName: "Ann", Salary: 54321, Password: "p"}

	cells := e.Cells()
	require.Len(t, cells, len(Header()))
	assert.Equal(t, 54321, cells[5])
	assert.Equal(t, "Ann", cells[0])

	values := e.Values()
	for i, c := range cells {
		assert.Equal(t, values[i], fmt.Sprint(c), "column %s", Header()[i])
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`"quoted"`, "quoted"},
		{"a,b,c", "abc"},
		{`x"y,z`, "xyz"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), "Sanitize(%q)", tt.in)
	}
}

func TestSafe(t *testing.T) {
	t.Run("error yields default", func(t *testing.T) {
		got := Safe(func() (string, error) { return "x", errors.New("fail") }, DefaultText)
		assert.Equal(t, DefaultText, got)
	})

	t.Run("panic yields default", func(t *testing.T) {
		got := Safe(func() (string, error) { panic("boom") }, DefaultText)
		assert.Equal(t, DefaultText, got)
	})

	t.Run("empty yields default", func(t *testing.T) {
		got := Safe(func() (string, error) { return "", nil }, DefaultText)
		assert.Equal(t, DefaultText, got)
	})

	t.Run("only stripped characters yields default", func(t *testing.T) {
		got := Safe(func() (string, error) { return `,"`, nil }, DefaultText)
		assert.Equal(t, DefaultText, got)
	})

	t.Run("string is sanitized", func(t *testing.T) {
		got := Safe(func() (string, error) { return `O"Brien, Pat`, nil }, DefaultText)
		assert.Equal(t, "OBrien Pat", got)
	})

	t.Run("zero int yields default", func(t *testing.T) {
		got := Safe(func() (int, error) { return 0, nil }, -1)
		assert.Equal(t, -1, got)
	})

	t.Run("int passes through", func(t *testing.T) {
		got := Safe(func() (int, error) { return 42000, nil }, DefaultSalary)
		assert.Equal(t, 42000, got)
	})
}

func TestPassword(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for range 500 {
		p := Password(r, DefaultPasswordLength)
		require.Len(t, p, DefaultPasswordLength)
		for _, c := range p {
			assert.True(t, strings.ContainsRune(passwordAlphabet, c), "unexpected character %q in %q", c, p)
		}
	}

	assert.Len(t, Password(r, 16), 16)
	assert.Empty(t, Password(r, 0))
}

func TestPasswordAlphabet(t *testing.T) {
	assert.Len(t, passwordAlphabet, 62)
}

func TestGenerator_DepartmentFailureOnOneRow(t *testing.T) {
	src := &stubSource{failDepartmentOn: 3}
	employees := NewGenerator(src, 7, 0).Generate(10)

	for i, e := range employees {
		if i == 3 {
			assert.Equal(t, DefaultText, e.Department)
		} else {
			assert.Equal(t, "Engineering", e.Department)
		}
		assert.Equal(t, "John", e.FirstName)
		assert.Equal(t, "Doe Jr", e.LastName)
		assert.Equal(t, "john@example.com", e.Email)
		assert.Equal(t, "555-0100", e.PhoneNumber)
		assert.Equal(t, 54321, e.Salary)
		assert.Len(t, e.Password, DefaultPasswordLength)
	}
}

func TestGenerator_PanickingFieldIsIsolated(t *testing.T) {
	src := &stubSource{failDepartmentOn: -1, panicOnEmail: true}
	e := NewGenerator(src, 1, 0).Next()

	assert.Equal(t, DefaultText, e.Email)
	assert.Equal(t, "Engineering", e.Department)
	assert.Equal(t, "John", e.FirstName)
}

func TestGenerator_PasswordsFollowSeed(t *testing.T) {
	a := NewGenerator(&stubSource{failDepartmentOn: -1}, 99, 0).Generate(5)
	b := NewGenerator(&stubSource{failDepartmentOn: -1}, 99, 0).Generate(5)
	c := NewGenerator(&stubSource{failDepartmentOn: -1}, 100, 0).Generate(5)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerator_Sources(t *testing.T) {
	for _, name := range []string{SourceJaswdr, SourceBxcodec} {
		t.Run(name, func(t *testing.T) {
			src, err := NewSource(name, 42)
			require.NoError(t, err)

			employees := NewGenerator(src, 42, 0).Generate(100)
			require.Len(t, employees, 100)

			for _, e := range employees {
				for i, v := range e.Values() {
					assert.NotEmpty(t, v, "column %s", Header()[i])
					assert.NotContains(t, v, `"`)
					assert.NotContains(t, v, ",")
				}
				if e.Salary != DefaultSalary {
					assert.GreaterOrEqual(t, e.Salary, 10000)
					assert.LessOrEqual(t, e.Salary, 99999)
				}
				assert.Len(t, e.Password, DefaultPasswordLength)
			}
		})
	}
}

func TestGenerator_DifferentSeedsDiffer(t *testing.T) {
	genA := NewGenerator(NewJaswdrSource(1), 1, 0)
	genB := NewGenerator(NewJaswdrSource(2), 2, 0)

	assert.NotEqual(t, genA.Generate(20), genB.Generate(20))
}

func TestNewSource_Unknown(t *testing.T) {
	_, err := NewSource("nope", 1)
	assert.Error(t, err)
}
