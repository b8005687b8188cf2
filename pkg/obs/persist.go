package obs

import (
	"encoding/json"
	"math"
)

// safeFloat64 marshals NaN and Inf as null, matching the convention lattice
// data pipelines need since plain JSON has no representation for them; the
// zero-value round-trips as ordinary numbers.
type safeFloat64 float64

func (f safeFloat64) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(f))
}

func (f *safeFloat64) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = safeFloat64(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = safeFloat64(v)
	return nil
}

func toSafe(xs []float64) []safeFloat64 {
	out := make([]safeFloat64, len(xs))
	for i, v := range xs {
		out[i] = safeFloat64(v)
	}
	return out
}

func fromSafe(xs []safeFloat64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = float64(v)
	}
	return out
}

// wireObs is the serializable snapshot of an Obs, round-tripping exactly
// value, names, deltas, idl, r_values and reweighted. Both
// MarshalJSON/UnmarshalJSON and GobEncode/GobDecode (gob.go) go through this
// single representation.
type wireObs struct {
	Value      safeFloat64
	Names      []string
	Deltas     map[string][]safeFloat64
	IDL        map[string][]int
	RValues    map[string]safeFloat64
	Reweighted bool
}

// toWire snapshots o's current state.
func (o *Obs) toWire() wireObs {
	w := wireObs{
		Value:      safeFloat64(o.value),
		Names:      o.names,
		Deltas:     make(map[string][]safeFloat64, len(o.names)),
		IDL:        make(map[string][]int, len(o.names)),
		RValues:    make(map[string]safeFloat64, len(o.names)),
		Reweighted: o.reweighted,
	}
	for _, name := range o.names {
		w.Deltas[name] = toSafe(o.deltas[name])
		w.IDL[name] = o.idl[name].Slice()
		w.RValues[name] = safeFloat64(o.rValues[name])
	}
	return w
}

// MarshalJSON serializes o's full state.
func (o *Obs) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.toWire())
}

// UnmarshalJSON restores an Obs from its serialized snapshot, bypassing
// recentering exactly as newFromLinearCombination does (the stored deltas
// and r_values are trusted as-is).
func (o *Obs) UnmarshalJSON(data []byte) error {
	var w wireObs
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return o.fromWire(w)
}
