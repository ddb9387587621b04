package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var inputFields = []struct {
	name string
	dst  func(*Input) *float64
}{
	{"house_dem_value", func(in *Input) *float64 { return &in.HouseDem }},
	{"house_rep_value", func(in *Input) *float64 { return &in.HouseRep }},
	{"senate_rep_value", func(in *Input) *float64 { return &in.SenateRep }},
	{"senate_ind_value", func(in *Input) *float64 { return &in.SenateInd }},
	{"senate_dem_value", func(in *Input) *float64 { return &in.SenateDem }},
}

// DecodeInput reads the five ratios from a JSON object. Numbers, numeric
// strings and booleans are accepted; anything else is an *InputError.
func DecodeInput(r io.Reader) (Input, error) {
	var raw map[string]json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return Input{}, &InputError{Reason: fmt.Sprintf("request body must be a JSON object: %v", err)}
	}
	if raw == nil {
		return Input{}, &InputError{Reason: "request body must be a JSON object"}
	}

	var in Input
	for _, f := range inputFields {
		msg, ok := raw[f.name]
		if !ok {
			return Input{}, &InputError{Field: f.name, Reason: "missing"}
		}
		v, err := coerceFloat(msg)
		if err != nil {
			return Input{}, &InputError{Field: f.name, Reason: err.Error()}
		}
		*f.dst(&in) = v
	}
	return in, nil
}

func coerceFloat(msg json.RawMessage) (float64, error) {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 {
		return 0, fmt.Errorf("empty value")
	}

	switch msg[0] {
	case '"':
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", s)
		}
		return v, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(msg, &b); err != nil {
			return 0, err
		}
		if b {
			return 1, nil
		}
		return 0, nil
	case 'n':
		return 0, fmt.Errorf("must not be null")
	case '{', '[':
		return 0, fmt.Errorf("must be a number, got %s", string(msg))
	}

	var v float64
	if err := json.Unmarshal(msg, &v); err != nil {
		return 0, fmt.Errorf("not a number: %s", string(msg))
	}
	return v, nil
}
