package power

import (
	"fmt"
)

// Kind tags a term variant so terms can be built from configuration.
type Kind string

const (
	Joule     Kind = "joule"
	Radiative Kind = "radiative"
)

type constructor func(p Params) (Term, error)

var constructors = map[Kind]constructor{
	Joule: func(p Params) (Term, error) {
		j, err := NewJouleHeating(p)
		if err != nil {
			return nil, err
		}
		return j, nil
	},
	Radiative: func(p Params) (Term, error) {
		r, err := NewRadiativeCooling(p)
		if err != nil {
			return nil, err
		}
		return r, nil
	},
}

// New builds the term of the given kind from the shared parameter record.
func New(kind Kind, p Params) (Term, error) {
	c, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return c(p)
}

// Build 按顺序构造多个功率项
func Build(p Params, kinds ...Kind) ([]Term, error) {
	terms := make([]Term, 0, len(kinds))
	for _, k := range kinds {
		t, err := New(k, p)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", k, err)
		}
		terms = append(terms, t)
	}
	return terms, nil
}
