package domain

import json "github.com/goccy/go-json"

// Single seam for the JSON codec so storage, output, and the event
// envelope all agree on one implementation.
func jsonMarshal(v interface{}) ([]byte, error)      { return json.Marshal(v) }
func jsonUnmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }
