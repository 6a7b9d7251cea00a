package model

import (
	"encoding/json"
	"strconv"
)

// ScoreMap maps category name to mean score. Legacy clients serialize some
// scores as numeric strings; decoding coerces those and silently drops
// anything non-numeric so NaN never enters an aggregation.
type ScoreMap map[string]float64

// UnmarshalJSON accepts number or numeric-string values per category.
func (m *ScoreMap) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(ScoreMap, len(raw))
	for category, value := range raw {
		// json.Unmarshal accepts null into a float without setting it, so a
		// null score would otherwise masquerade as zero.
		if string(value) == "null" {
			continue
		}
		var n float64
		if err := json.Unmarshal(value, &n); err == nil {
			out[category] = n
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			continue
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			out[category] = n
		}
	}
	*m = out
	return nil
}
