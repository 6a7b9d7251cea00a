package model

import (
	"encoding/json"
	"strconv"
)

// ResponseKind tags the variant held by a ResponseValue
type ResponseKind string

const (
	ResponseNumeric  ResponseKind = "numeric"  // Likert rating 1-5
	ResponseText     ResponseKind = "text"     // Open-ended answer
	ResponseTextList ResponseKind = "textList" // Multi-entry open-ended answer
)

// ResponseValue is a tagged union over the three answer shapes. Only the
// field matching Kind is meaningful; numeric-only aggregation filters on
// Kind rather than inspecting runtime types.
type ResponseValue struct {
	Kind     ResponseKind `json:"-" bson:"kind"`
	Number   float64      `json:"-" bson:"number,omitempty"`
	Text     string       `json:"-" bson:"text,omitempty"`
	TextList []string     `json:"-" bson:"textList,omitempty"`
}

// NumericValue builds a numeric response value.
func NumericValue(n float64) ResponseValue {
	return ResponseValue{Kind: ResponseNumeric, Number: n}
}

// TextValue builds a free-text response value.
func TextValue(s string) ResponseValue {
	return ResponseValue{Kind: ResponseText, Text: s}
}

// TextListValue builds a multi-entry response value.
func TextListValue(items []string) ResponseValue {
	return ResponseValue{Kind: ResponseTextList, TextList: items}
}

// Numeric returns the numeric payload and whether the value carries one.
// Text values holding a parseable number count as numeric; clients have
// been observed to send ratings as strings.
func (v ResponseValue) Numeric() (float64, bool) {
	switch v.Kind {
	case ResponseNumeric:
		return v.Number, true
	case ResponseText:
		if n, err := strconv.ParseFloat(v.Text, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// MarshalJSON emits the raw union shape (number | string | []string) the
// web client exchanges. An empty value round-trips as null.
func (v ResponseValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ResponseNumeric:
		return json.Marshal(v.Number)
	case ResponseTextList:
		return json.Marshal(v.TextList)
	case ResponseText:
		return json.Marshal(v.Text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts number, string, or string-list payloads. A null
// payload decodes to an empty value, never to the number zero: a cleared
// answer must stay outside numeric aggregation.
func (v *ResponseValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ResponseValue{}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumericValue(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = TextValue(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*v = TextListValue(list)
	return nil
}

// Response is one recorded answer within an assessment. A later response
// for the same question replaces the earlier one.
type Response struct {
	LayerID      string        `json:"layerId" bson:"layerId"`
	CategoryID   string        `json:"categoryId" bson:"categoryId"`
	QuestionID   string        `json:"questionId" bson:"questionId"`
	QuestionText string        `json:"questionText" bson:"questionText"`
	Response     ResponseValue `json:"response" bson:"response"`
}
