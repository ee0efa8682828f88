// Package vectors loads codec conformance vectors from YAML files.
//
// A vector file holds a suite of vectors. Each vector gives an input
// datagram in hex and either the fields the decoder must produce or the
// name of the error it must return:
//
//	suite: header
//	vectors:
//	  - id: HDR-001
//	    description: piggybacked 2.05 response
//	    hex: "64 45 13 FD D0 E2 4D AC FF 48 65 6C 6C 6F"
//	    expect:
//	      type: ACK
//	      code: "2.05"
//	      message_id: 5117
//	      token: d0e24dac
//	      payload: 48656c6c6f
//	      reencode: true
//	  - id: HDR-002
//	    hex: "40 01"
//	    error: truncated
package vectors

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Suite is the contents of one vector file.
type Suite struct {
	// Name identifies the suite.
	Name string `yaml:"suite"`

	// Description is free text.
	Description string `yaml:"description,omitempty"`

	// Vectors are the cases in file order.
	Vectors []Vector `yaml:"vectors"`

	// File is the path the suite was loaded from (set by the loader).
	File string `yaml:"-"`
}

// Vector is a single conformance case.
type Vector struct {
	// ID uniquely identifies the vector.
	ID string `yaml:"id"`

	// Description is free text.
	Description string `yaml:"description,omitempty"`

	// Hex is the input datagram. Whitespace is ignored.
	Hex string `yaml:"hex"`

	// Expect holds the decoded fields for a valid input.
	Expect *Expectation `yaml:"expect,omitempty"`

	// Error names the error a decoder must return for an invalid input.
	Error string `yaml:"error,omitempty"`
}

// Expectation describes a successfully decoded packet.
type Expectation struct {
	// Version defaults to 1 when omitted.
	Version *int `yaml:"version,omitempty"`

	// Type is CON, NON, ACK or RST.
	Type string `yaml:"type"`

	// Code is in c.dd notation.
	Code string `yaml:"code"`

	MessageID int `yaml:"message_id"`

	// Token is hex.
	Token string `yaml:"token,omitempty"`

	Options []OptionSpec `yaml:"options,omitempty"`

	// Payload is hex.
	Payload string `yaml:"payload,omitempty"`

	// Reencode requires the decoded packet to encode back to the input.
	Reencode bool `yaml:"reencode,omitempty"`
}

// OptionSpec is an expected option.
type OptionSpec struct {
	Number uint32 `yaml:"number"`

	// Value is hex.
	Value string `yaml:"value,omitempty"`

	// Text is an alternative to Value for printable option values.
	Text string `yaml:"text,omitempty"`
}

// Input returns the decoded input bytes.
func (v *Vector) Input() ([]byte, error) {
	return DecodeHex(v.Hex)
}

// Bytes returns the expected option value.
func (o OptionSpec) Bytes() ([]byte, error) {
	if o.Text != "" {
		return []byte(o.Text), nil
	}
	return DecodeHex(o.Value)
}

// DecodeHex decodes a hex string, ignoring whitespace.
func DecodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.Join(strings.Fields(s), ""))
}

// LoadError provides details about a vector loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Line is the line number where the error occurred (0 if unknown).
	Line int

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.Line > 0 {
		return e.File + ":" + strconv.Itoa(e.Line) + ": " + msg
	}
	return e.File + ": " + msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
