package obs

import "math"

// Equal reports whether a and b are the same observable: two Obs are equal
// iff (a-b).IsZero(), i.e. their values and deltas agree up to
// floating-point tolerance on every replica in the union of their names.
func Equal(a, b *Obs) bool {
	diff, err := Sub(a, b)
	if err != nil {
		return false
	}
	return diff.IsZero()
}

// CloseTo reports whether a and b's central values agree within tol. Unlike
// Equal it ignores the per-configuration fluctuation trail entirely.
func CloseTo(a, b *Obs, tol float64) bool {
	return math.Abs(a.value-b.value) <= tol
}

// Less compares central values only; Obs has no total order on its
// distribution, so comparisons beyond the mean are left to GammaMethod.
func Less(a, b *Obs) bool { return a.value < b.value }

// Greater compares central values only, see Less.
func Greater(a, b *Obs) bool { return a.value > b.value }
