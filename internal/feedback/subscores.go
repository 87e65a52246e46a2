package feedback

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Subscore is a single dimension value in [0,1].
type Subscore struct {
	Dimension Dimension `validate:"required"`
	Value     float64   `validate:"gte=0,lte=1"`
}

// Subscores keeps the scorer's key order, which decides the order of strengths
// and breaks ties between equal weaknesses.
type Subscores []Subscore

// SubscoresOf builds Subscores in the given order.
func SubscoresOf(pairs ...Subscore) Subscores {
	return append(Subscores(nil), pairs...)
}

// Get returns the value for d and whether the scorer reported it.
func (s Subscores) Get(d Dimension) (float64, bool) {
	for _, sc := range s {
		if sc.Dimension == d {
			return sc.Value, true
		}
	}
	return 0, false
}

// ValueOr returns the value for d, or fallback when d is absent.
func (s Subscores) ValueOr(d Dimension, fallback float64) float64 {
	if v, ok := s.Get(d); ok {
		return v
	}
	return fallback
}

// Map returns an unordered copy.
func (s Subscores) Map() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, sc := range s {
		out[string(sc.Dimension)] = sc.Value
	}
	return out
}

// ParseSubscores decodes a JSON object keeping the document order of its keys.
// Non-numeric values are rejected; duplicate keys keep the first position and the last value.
func ParseSubscores(raw string) (Subscores, error) {
	parsed := gjson.Parse(raw)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("subscores must be a JSON object")
	}

	var (
		out Subscores
		err error
	)
	index := map[Dimension]int{}
	parsed.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			err = fmt.Errorf("subscore %q is not a number", key.String())
			return false
		}
		d := Dimension(key.String())
		if i, ok := index[d]; ok {
			out[i].Value = value.Float()
			return true
		}
		index[d] = len(out)
		out = append(out, Subscore{Dimension: d, Value: value.Float()})
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Subscores) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}
	parsed, err := ParseSubscores(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Subscores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sc := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(sc.Dimension))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(sc.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
