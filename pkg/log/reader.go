package log

import (
	"bytes"
	"errors"
	"io"
	"iter"
	"os"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/mash-protocol/mash-coap/pkg/wire"
)

// Filter selects capture events. Zero fields match everything.
//
// Event-level fields apply to every event. Message-level fields (MessageID,
// Type, Code, Token, PathPrefix) only match wire events carrying a decoded
// message; an error event matches Code through its reported status.
type Filter struct {
	ExchangeID string
	RemoteAddr string
	Direction  *Direction
	Layer      *Layer
	Category   *Category

	// TimeStart is inclusive, TimeEnd exclusive.
	TimeStart *time.Time
	TimeEnd   *time.Time

	MessageID *uint16
	Type      *wire.Type
	Code      *wire.Code
	Token     []byte

	// PathPrefix matches request paths without the leading "/".
	PathPrefix string
}

// Matches reports whether event satisfies every criterion in f.
func (f *Filter) Matches(event Event) bool {
	switch {
	case f.ExchangeID != "" && event.ExchangeID != f.ExchangeID,
		f.RemoteAddr != "" && event.RemoteAddr != f.RemoteAddr,
		f.Direction != nil && event.Direction != *f.Direction,
		f.Layer != nil && event.Layer != *f.Layer,
		f.Category != nil && event.Category != *f.Category,
		f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart),
		f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd):
		return false
	}
	if !f.messageLevel() {
		return true
	}
	if event.Message != nil {
		return f.matchesMessage(event.Message)
	}
	// Only a status code can be matched against an error event.
	if event.Error == nil || event.Error.Code == nil || f.Code == nil {
		return false
	}
	return *event.Error.Code == *f.Code && f.MessageID == nil && f.Type == nil &&
		f.Token == nil && f.PathPrefix == ""
}

func (f *Filter) messageLevel() bool {
	return f.MessageID != nil || f.Type != nil || f.Code != nil || f.Token != nil || f.PathPrefix != ""
}

func (f *Filter) matchesMessage(m *MessageEvent) bool {
	switch {
	case f.MessageID != nil && m.MessageID != *f.MessageID,
		f.Type != nil && m.Type != *f.Type,
		f.Code != nil && m.Code != *f.Code,
		f.Token != nil && !bytes.Equal(m.Token, f.Token),
		f.PathPrefix != "" && !strings.HasPrefix(m.Path, strings.TrimPrefix(f.PathPrefix, "/")):
		return false
	}
	return true
}

// Reader streams events from a capture file.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
	skipped int
}

// NewReader opens a capture file for reading every event.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens a capture file, yielding only events that match
// filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next matching event, or io.EOF at the end of the file.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, err
		}
		if r.filter.Matches(event) {
			return event, nil
		}
		r.skipped++
	}
}

// Events iterates over the remaining matching events. Iteration stops
// after the first read error, which is yielded with a zero Event.
func (r *Reader) Events() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			event, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(event, err) || err != nil {
				return
			}
		}
	}
}

// Skipped returns how many decoded events the filter has rejected so far.
func (r *Reader) Skipped() int { return r.skipped }

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
