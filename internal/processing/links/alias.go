package links

import (
	"math/rand/v2"
)

// AliasAlphabet leaves out characters that are easy to misread: 0/O and 1/I/L.
const AliasAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const AliasLength = 8

// RandomAliasGenerator draws fixed-length aliases from AliasAlphabet. It is not
// meant to be unguessable, only short, unambiguous and unlikely to collide.
type RandomAliasGenerator struct {
	length int
	intN   func(n int) int
}

func NewRandomAliasGenerator() *RandomAliasGenerator {
	return &RandomAliasGenerator{length: AliasLength, intN: rand.IntN}
}

// NewSeededAliasGenerator uses src instead of the global source, so a fixed
// seed yields a reproducible alias sequence.
func NewSeededAliasGenerator(src rand.Source) *RandomAliasGenerator {
	return &RandomAliasGenerator{length: AliasLength, intN: rand.New(src).IntN}
}

func (g *RandomAliasGenerator) Generate() (string, error) {
	out := make([]byte, g.length)
	for i := range out {
		out[i] = AliasAlphabet[g.intN(len(AliasAlphabet))]
	}
	return string(out), nil
}
