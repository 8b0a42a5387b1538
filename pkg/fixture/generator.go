package fixture

import "github.com/brianvoe/gofakeit/v7"

// Generator produces plausible personal data for form submissions.
type Generator interface {
	FirstName() string
	LastName() string
	// Username returns an account-style handle. Implementations should not
	// emit '@' or whitespace; RandomEmail does not check.
	Username() string
}

// fakeGenerator is the gofakeit-backed Generator.
type fakeGenerator struct {
	faker *gofakeit.Faker
}

// NewGenerator returns a Generator seeded with seed.
// A zero seed draws from a random source, so values differ between runs.
func NewGenerator(seed uint64) Generator {
	return &fakeGenerator{faker: gofakeit.New(seed)}
}

func (g *fakeGenerator) FirstName() string { return g.faker.FirstName() }
func (g *fakeGenerator) LastName() string  { return g.faker.LastName() }
func (g *fakeGenerator) Username() string  { return g.faker.Username() }
