package models

import "encoding/json"

// Links is an ordered collection of unique https links,
// in order of first appearance in the source text
type Links []string

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (l Links) MarshalBinary() (data []byte, err error) {
	return json.Marshal(l)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (l *Links) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, l)
}

// FilterResult is the outcome of applying a user's
// filter words to an extracted link collection
type FilterResult struct {
	Links    Links `json:"links"`
	Excluded int   `json:"excluded"`
	Total    int   `json:"total"`
}
