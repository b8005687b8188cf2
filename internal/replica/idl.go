// Package replica implements index-set algebra over the Markov-chain
// configuration indices ("idl") at which a replica was measured, and the
// ensemble/replica naming convention used to group replicas for error
// analysis.
package replica

import (
	"fmt"
	"sort"
)

// IDL is the list of configuration indices at which a replica was measured.
// It is either a compact contiguous Range or an explicit strictly-increasing
// List; both satisfy the same read-only interface so callers never need to
// branch on representation.
type IDL interface {
	// Len returns the number of measurements (N_configs), not the span.
	Len() int
	// At returns the i-th index (0-based access into the ordered sequence).
	At(i int) int
	// Bounds returns the minimum and maximum index.
	Bounds() (lo, hi int)
	// Slice materializes the full index sequence.
	Slice() []int
}

// Range is a compact contiguous index range [First, Last], inclusive.
type Range struct {
	First, Last int
}

func (r Range) Len() int { return r.Last - r.First + 1 }

func (r Range) At(i int) int { return r.First + i }

func (r Range) Bounds() (lo, hi int) { return r.First, r.Last }

func (r Range) Slice() []int {
	out := make([]int, r.Len())
	for i := range out {
		out[i] = r.First + i
	}
	return out
}

// List is an explicit strictly-increasing sequence of positive indices, used
// when a replica has gaps (irregular sampling).
type List struct {
	Indices []int
}

func (l List) Len() int { return len(l.Indices) }

func (l List) At(i int) int { return l.Indices[i] }

func (l List) Bounds() (lo, hi int) {
	if len(l.Indices) == 0 {
		return 0, 0
	}
	return l.Indices[0], l.Indices[len(l.Indices)-1]
}

func (l List) Slice() []int { return l.Indices }

// NewIDL validates a raw index sequence and returns the most compact
// representation: a Range if the sequence is contiguous, a List otherwise.
func NewIDL(indices []int) (IDL, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("replica: idl must not be empty")
	}
	prev := indices[0]
	if prev <= 0 {
		return nil, fmt.Errorf("replica: idl indices must be positive, got %d", prev)
	}
	contiguous := true
	for _, idx := range indices[1:] {
		if idx <= prev {
			return nil, fmt.Errorf("replica: idl must be strictly increasing, got %d after %d", idx, prev)
		}
		if idx != prev+1 {
			contiguous = false
		}
		prev = idx
	}
	if contiguous {
		return Range{First: indices[0], Last: indices[len(indices)-1]}, nil
	}
	cp := make([]int, len(indices))
	copy(cp, indices)
	return List{Indices: cp}, nil
}

// RangeIDL builds a contiguous idl directly, for the common case of a
// gap-free replica (avoids materializing the full index slice).
func RangeIDL(first, last int) (IDL, error) {
	if first <= 0 || last < first {
		return nil, fmt.Errorf("replica: invalid range [%d, %d]", first, last)
	}
	return Range{First: first, Last: last}, nil
}

// NConfigs returns the number of actual measurements on the replica — the
// normalization factor used by the variance formula, as opposed to the span
// of the (possibly gappy) expanded series.
func NConfigs(idl IDL) int { return idl.Len() }

// Expand returns a dense array over [lo, hi] (inclusive), placing each delta
// at its configuration index and zero everywhere else. Holes contribute
// nothing to sums because deltas are mean-zero.
func Expand(deltas []float64, idl IDL) []float64 {
	lo, hi := idl.Bounds()
	out := make([]float64, hi-lo+1)
	switch v := idl.(type) {
	case Range:
		copy(out, deltas)
	case List:
		for i, idx := range v.Indices {
			out[idx-lo] = deltas[i]
		}
	default:
		for i := 0; i < idl.Len(); i++ {
			out[idl.At(i)-lo] = deltas[i]
		}
	}
	return out
}

// Union returns the sorted union of two index sets, used when combining two
// observables on the same replica that were measured on different idl.
func Union(a, b IDL) (IDL, error) {
	as, bs := a.Slice(), b.Slice()
	merged := make([]int, 0, len(as)+len(bs))
	i, j := 0, 0
	for i < len(as) && j < len(bs) {
		switch {
		case as[i] < bs[j]:
			merged = append(merged, as[i])
			i++
		case as[i] > bs[j]:
			merged = append(merged, bs[j])
			j++
		default:
			merged = append(merged, as[i])
			i++
			j++
		}
	}
	merged = append(merged, as[i:]...)
	merged = append(merged, bs[j:]...)
	return NewIDL(merged)
}

// UnionAll folds Union over a non-empty slice of idl.
func UnionAll(idls ...IDL) (IDL, error) {
	if len(idls) == 0 {
		return nil, fmt.Errorf("replica: UnionAll requires at least one idl")
	}
	out := idls[0]
	var err error
	for _, idl := range idls[1:] {
		out, err = Union(out, idl)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// indexOf returns the position of target in a sorted slice, or -1.
func indexOf(sorted []int, target int) int {
	i := sort.SearchInts(sorted, target)
	if i < len(sorted) && sorted[i] == target {
		return i
	}
	return -1
}

// ExpandOnto re-expresses deltas (sampled on idl) as a dense array over the
// index set union, with zeros at indices absent from idl. Unlike Expand,
// union may not start at idl's own minimum.
func ExpandOnto(deltas []float64, idl IDL, union IDL) []float64 {
	out := make([]float64, union.Len())
	unionSlice := union.Slice()
	switch v := idl.(type) {
	case Range:
		lo, _ := v.Bounds()
		for i := 0; i < v.Len(); i++ {
			if pos := indexOf(unionSlice, lo+i); pos >= 0 {
				out[pos] = deltas[i]
			}
		}
	case List:
		for i, idx := range v.Indices {
			if pos := indexOf(unionSlice, idx); pos >= 0 {
				out[pos] = deltas[i]
			}
		}
	default:
		for i := 0; i < idl.Len(); i++ {
			if pos := indexOf(unionSlice, idl.At(i)); pos >= 0 {
				out[pos] = deltas[i]
			}
		}
	}
	return out
}
