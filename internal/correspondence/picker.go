// Package correspondence derives cover-letter and outreach-email content
// models from a tailored profile and requirement record, reusing the
// extractor's contact signal so both documents stay consistent.
package correspondence

import "math/rand"

// Picker selects an index in [0, n). Sentence variants are chosen through
// an explicit picker instead of an ambient random source so that callers
// and tests control the selection deterministically.
type Picker func(n int) int

// NewSeededPicker returns a Picker backed by a seeded source. The same
// seed always yields the same selection sequence.
func NewSeededPicker(seed int64) Picker {
	rng := rand.New(rand.NewSource(seed))
	return func(n int) int {
		if n <= 1 {
			return 0
		}
		return rng.Intn(n)
	}
}

// FixedPicker always selects the given index (clamped to the variant
// count). Useful for exact-output assertions.
func FixedPicker(index int) Picker {
	return func(n int) int {
		if n == 0 {
			return 0
		}
		if index < 0 || index >= n {
			return 0
		}
		return index
	}
}
