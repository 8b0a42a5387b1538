// Package fixture provides the string utilities used to build and check
// contact form test data: email format validation, random email generation
// and first/last name normalization.
//
// Random values come from an explicitly constructed Generator so tests can
// substitute deterministic fakes:
//
//	gen := fixture.NewGenerator(42)
//	email := fixture.RandomEmail(gen, "test.local")
//	name, err := fixture.FullName(gen.FirstName(), gen.LastName())
package fixture
