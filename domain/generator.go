package domain

import "math/rand/v2"

// Source produces raw values for each generated field.
// Implementations may fail or panic; Generator substitutes defaults.
type Source interface {
	FirstName() (string, error)
	LastName() (string, error)
	Department() (string, error)
	Email() (string, error)
	PhoneNumber() (string, error)
	Salary() (int, error)
}

// Generator builds Employee records from a Source.
type Generator struct {
	source         Source
	rng            *rand.Rand
	passwordLength int
}

// NewGenerator creates a Generator. The seed drives password generation;
// a non-positive passwordLength falls back to DefaultPasswordLength.
func NewGenerator(source Source, seed int64, passwordLength int) *Generator {
	if passwordLength <= 0 {
		passwordLength = DefaultPasswordLength
	}

	return &Generator{
		source:         source,
		rng:            rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		passwordLength: passwordLength,
	}
}

// Next returns one record. Each field is generated independently, so a
// failure in one leaves the others untouched.
func (g *Generator) Next() Employee {
	return Employee{
		FirstName:   Safe(g.source.FirstName, DefaultText),
		LastName:    Safe(g.source.LastName, DefaultText),
		Department:  Safe(g.source.Department, DefaultText),
		Email:       Safe(g.source.Email, DefaultText),
		PhoneNumber: Safe(g.source.PhoneNumber, DefaultText),
		Salary:      Safe(g.source.Salary, DefaultSalary),
		Password:    Password(g.rng, g.passwordLength),
	}
}

// Generate returns n records.
func (g *Generator) Generate(n int) []Employee {
	employees := make([]Employee, n)
	for i := range n {
		employees[i] = g.Next()
	}
	return employees
}
