package sampler

import "math/rand"

// defaultRNGSeed is the fixed deterministic seed used when a caller passes
// a nil *rand.Rand, mirroring tsp.rngFromSeed's seed==0 policy.
const defaultRNGSeed int64 = 1

// orDefault returns rng unchanged, or a freshly seeded deterministic
// generator when rng is nil. math/rand.Rand is not goroutine-safe; callers
// sharing a sampler across goroutines must supply one *rand.Rand per
// goroutine.
func orDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(defaultRNGSeed))
}
