package obs

import (
	"bytes"
	"encoding/gob"

	"github.com/latticeqcd/goerrors/internal/replica"
)

// GobEncode implements gob.GobEncoder. Obs has no exported fields for gob's
// reflection-based encoder to walk, so it is routed through the same
// wireObs snapshot MarshalJSON uses.
func (o *Obs) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o.toWire()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder, the inverse of GobEncode.
func (o *Obs) GobDecode(data []byte) error {
	var w wireObs
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	return o.fromWire(w)
}

// fromWire rebuilds o in place from a decoded wire snapshot, bypassing
// recentering exactly as newFromLinearCombination does.
func (o *Obs) fromWire(w wireObs) error {
	deltas := make(map[string][]float64, len(w.Names))
	idl := make(map[string]replica.IDL, len(w.Names))
	rValues := make(map[string]float64, len(w.Names))
	for _, name := range w.Names {
		deltas[name] = fromSafe(w.Deltas[name])
		built, err := replica.NewIDL(w.IDL[name])
		if err != nil {
			return newInvariantError("obs: failed to restore idl for replica "+name, err)
		}
		idl[name] = built
		rValues[name] = float64(w.RValues[name])
	}

	restored := &Obs{
		value:      float64(w.Value),
		names:      w.Names,
		deltas:     deltas,
		idl:        idl,
		rValues:    rValues,
		reweighted: w.Reweighted,
	}
	if err := restored.checkInvariants(); err != nil {
		return err
	}
	*o = *restored
	return nil
}
