package domain

import (
	"fmt"
	mathrand "math/rand"
	"math/rand/v2"

	bxfaker "github.com/bxcodec/faker/v4"
	"github.com/jaswdr/faker"
)

// Source names accepted by NewSource.
const (
	SourceJaswdr  = "jaswdr"
	SourceBxcodec = "bxcodec"
)

const salaryDigits = 5

// NewSource returns the named fake-data source.
func NewSource(name string, seed int64) (Source, error) {
	switch name {
	case SourceJaswdr, "":
		return NewJaswdrSource(seed), nil
	case SourceBxcodec:
		return NewBxcodecSource(seed), nil
	default:
		return nil, fmt.Errorf("unknown source %q", name)
	}
}

// JaswdrSource generates fields with github.com/jaswdr/faker.
// Output is deterministic for a given seed.
type JaswdrSource struct {
	f faker.Faker
}

func NewJaswdrSource(seed int64) *JaswdrSource {
	return &JaswdrSource{f: faker.NewWithSeed(mathrand.NewSource(seed))}
}

func (s *JaswdrSource) FirstName() (string, error)   { return s.f.Person().FirstName(), nil }
func (s *JaswdrSource) LastName() (string, error)    { return s.f.Person().LastName(), nil }
func (s *JaswdrSource) Department() (string, error)  { return s.f.Company().JobTitle(), nil }
func (s *JaswdrSource) Email() (string, error)       { return s.f.Internet().Email(), nil }
func (s *JaswdrSource) PhoneNumber() (string, error) { return s.f.Phone().Number(), nil }
func (s *JaswdrSource) Salary() (int, error)         { return s.f.RandomNumber(salaryDigits), nil }

var jobPositions = []string{
	"Software Engineer",
	"Backend Developer",
	"Frontend Developer",
	"DevOps Engineer",
	"QA Engineer",
	"Project Manager",
	"HR Specialist",
	"Accountant",
	"Designer",
	"System Administrator",
}

// BxcodecSource generates fields with github.com/bxcodec/faker/v4.
// bxcodec draws from its own global randomness, so only the department
// choice follows the seed.
type BxcodecSource struct {
	rng *rand.Rand
}

func NewBxcodecSource(seed int64) *BxcodecSource {
	return &BxcodecSource{rng: rand.New(rand.NewPCG(uint64(seed), 0))}
}

func (s *BxcodecSource) FirstName() (string, error)   { return bxfaker.FirstName(), nil }
func (s *BxcodecSource) LastName() (string, error)    { return bxfaker.LastName(), nil }
func (s *BxcodecSource) Email() (string, error)       { return bxfaker.Email(), nil }
func (s *BxcodecSource) PhoneNumber() (string, error) { return bxfaker.Phonenumber(), nil }

func (s *BxcodecSource) Department() (string, error) {
	return jobPositions[s.rng.IntN(len(jobPositions))], nil
}

func (s *BxcodecSource) Salary() (int, error) {
	n, err := bxfaker.RandomInt(10000, 99999, 1)
	if err != nil {
		return 0, fmt.Errorf("random salary: %w", err)
	}
	if len(n) == 0 {
		return 0, fmt.Errorf("random salary: empty result")
	}
	return n[0], nil
}
