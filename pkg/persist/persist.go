// Package persist provides file-level save/load helpers built on the
// serialize/deserialize pair Obs exposes itself (encoding/json and
// encoding/gob interfaces), kept as a thin, swappable layer rather than
// folded into pkg/obs.
package persist

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"os"

	"github.com/latticeqcd/goerrors/pkg/obs"
)

// SaveJSON writes o to path as JSON.
func SaveJSON(path string, o *obs.Obs) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadJSON reads an Obs previously written by SaveJSON.
func LoadJSON(path string) (*obs.Obs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	o := &obs.Obs{}
	if err := json.Unmarshal(data, o); err != nil {
		return nil, err
	}
	return o, nil
}

// SaveGob writes o to path using encoding/gob, more compact than JSON and
// exact on every float64 bit pattern.
func SaveGob(path string, o *obs.Obs) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// LoadGob reads an Obs previously written by SaveGob.
func LoadGob(path string) (*obs.Obs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	o := &obs.Obs{}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(o); err != nil {
		return nil, err
	}
	return o, nil
}

// SaveJSONList writes a named collection of observables to a single JSON
// file — the common case of persisting every Obs produced by one analysis
// run.
func SaveJSONList(path string, named map[string]*obs.Obs) error {
	data, err := json.MarshalIndent(named, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadJSONList reads a collection previously written by SaveJSONList.
func LoadJSONList(path string) (map[string]*obs.Obs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]*obs.Obs, len(raw))
	for name, msg := range raw {
		o := &obs.Obs{}
		if err := json.Unmarshal(msg, o); err != nil {
			return nil, err
		}
		out[name] = o
	}
	return out, nil
}
