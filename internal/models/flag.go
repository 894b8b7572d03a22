package models

import "encoding/json"

// Flag is a boolean-like request field with tri-state input semantics.
// Clients historically send flags as native booleans, the literal string
// "true", or not at all. Only a native true or the string "true" normalize
// to true; every other value ("false", "0", 0, null, arbitrary strings,
// or an absent key) normalizes to false.
//
// Normalization is a write-path concern: Flag appears only in input DTOs.
// Persisted rows hold strict booleans and are passed through unchanged on read.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler. It never fails: unrecognized
// values are coerced to false rather than rejected, matching the lenient
// contract the frontend relies on.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		*f = false
		return nil
	}

	switch val := v.(type) {
	case bool:
		*f = Flag(val)
	case string:
		*f = Flag(val == "true")
	default:
		// numbers, null, objects, arrays
		*f = false
	}

	return nil
}

// Bool returns the normalized value as a plain bool for query binding.
func (f Flag) Bool() bool {
	return bool(f)
}
