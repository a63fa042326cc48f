package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is a diary answer value: either free text or a number (ratings).
// It marshals to a bare JSON number or a JSON string, matching whichever
// kind it holds, so entries round-trip without type loss.
type Value struct {
	text   string
	number json.Number
	isNum  bool
}

// Text returns a string-kinded value.
func Text(s string) Value {
	return Value{text: s}
}

// Number returns a number-kinded value.
func Number(n json.Number) Value {
	return Value{number: n, isNum: true}
}

// Rating returns a number-kinded value from an integer rating.
func Rating(n int) Value {
	return Value{number: json.Number(strconv.Itoa(n)), isNum: true}
}

// IsNumber reports whether the value is number-kinded.
func (v Value) IsNumber() bool { return v.isNum }

// String returns the textual form of the value: the raw digits for a
// number, the text itself for a string.
func (v Value) String() string {
	if v.isNum {
		return v.number.String()
	}
	return v.text
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isNum {
		if v.number == "" {
			return []byte("0"), nil
		}
		return []byte(v.number), nil
	}
	return json.Marshal(v.text)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case string:
		*v = Value{text: t}
	case json.Number:
		*v = Value{number: t, isNum: true}
	default:
		return fmt.Errorf("answer value must be a string or a number, got %T", raw)
	}
	return nil
}
