package service

import (
	"math/rand/v2"

	"przypadek/internal/domain"
)

// Selector draws grammatical cases and pluralities uniformly
type Selector struct {
	pick func(n int) int
}

// NewSelector creates a selector; a nil pick uses math/rand/v2
func NewSelector(pick func(n int) int) *Selector {
	if pick == nil {
		pick = rand.IntN
	}
	return &Selector{pick: pick}
}

// RandomCase returns one of the three grammatical cases
func (s *Selector) RandomCase() domain.GrammaticalCase {
	return domain.Cases[s.pick(len(domain.Cases))]
}

// RandomPlurality returns singular or plural
func (s *Selector) RandomPlurality() domain.Plurality {
	return domain.Pluralities[s.pick(len(domain.Pluralities))]
}
