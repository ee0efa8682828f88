package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/mash-protocol/mash-coap/pkg/wire"
)

func TestEventRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	cf := wire.ApplicationJSON
	code := wire.Code(wire.StatusBadRequest)

	tests := []struct {
		name  string
		event Event
	}{
		{
			name: "datagram",
			event: Event{
				Timestamp:  ts,
				ExchangeID: "ex-1",
				Direction:  DirectionIn,
				Layer:      LayerTransport,
				Category:   CategoryMessage,
				LocalRole:  RoleServer,
				RemoteAddr: "192.0.2.1:5683",
				Datagram:   &DatagramEvent{Size: 300, Data: []byte{0x40, 0x01}, Truncated: true},
			},
		},
		{
			name: "message",
			event: Event{
				Timestamp:  ts,
				ExchangeID: "ex-2",
				Direction:  DirectionOut,
				Layer:      LayerWire,
				Category:   CategoryMessage,
				Message: &MessageEvent{
					Type:          wire.Acknowledgement,
					Code:          wire.Code(wire.StatusContent),
					MessageID:     0xBEEF,
					Token:         []byte{1, 2},
					Options:       []OptionEvent{{Number: wire.OptionContentFormat, Value: []byte{50}}},
					PayloadSize:   2,
					Payload:       []byte("{}"),
					ContentFormat: &cf,
				},
			},
		},
		{
			name: "error",
			event: Event{
				Timestamp:  ts,
				ExchangeID: "ex-3",
				Direction:  DirectionIn,
				Layer:      LayerWire,
				Category:   CategoryError,
				Error: &ErrorEventData{
					Layer:   LayerWire,
					Message: "malformed option",
					Code:    &code,
					Context: "decode",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeEvent(tt.event)
			if err != nil {
				t.Fatalf("EncodeEvent failed: %v", err)
			}
			got, err := DecodeEvent(data)
			if err != nil {
				t.Fatalf("DecodeEvent failed: %v", err)
			}

			if !got.Timestamp.Equal(tt.event.Timestamp) {
				t.Errorf("Timestamp: got %v, want %v", got.Timestamp, tt.event.Timestamp)
			}
			if got.ExchangeID != tt.event.ExchangeID {
				t.Errorf("ExchangeID: got %q, want %q", got.ExchangeID, tt.event.ExchangeID)
			}
			if got.Direction != tt.event.Direction || got.Layer != tt.event.Layer || got.Category != tt.event.Category {
				t.Errorf("classification mismatch: got %v/%v/%v", got.Direction, got.Layer, got.Category)
			}
			if got.LocalRole != tt.event.LocalRole || got.RemoteAddr != tt.event.RemoteAddr {
				t.Errorf("peer mismatch: got %v %q", got.LocalRole, got.RemoteAddr)
			}

			switch {
			case tt.event.Datagram != nil:
				if got.Datagram == nil || got.Datagram.Size != 300 || !got.Datagram.Truncated {
					t.Errorf("Datagram: got %+v", got.Datagram)
				}
			case tt.event.Message != nil:
				m := got.Message
				if m == nil {
					t.Fatal("Message is nil")
				}
				if m.MessageID != 0xBEEF || m.Code != wire.Code(wire.StatusContent) || m.Type != wire.Acknowledgement {
					t.Errorf("Message header: got %+v", m)
				}
				if len(m.Options) != 1 || !bytes.Equal(m.Options[0].Value, []byte{50}) {
					t.Errorf("Options: got %+v", m.Options)
				}
				if m.ContentFormat == nil || *m.ContentFormat != wire.ApplicationJSON {
					t.Errorf("ContentFormat: got %v", m.ContentFormat)
				}
			case tt.event.Error != nil:
				if got.Error == nil || got.Error.Message != "malformed option" {
					t.Fatalf("Error: got %+v", got.Error)
				}
				if got.Error.Code == nil || *got.Error.Code != code {
					t.Errorf("Error.Code: got %v", got.Error.Code)
				}
			}
		})
	}
}

func TestEncodeEventUsesIntegerKeys(t *testing.T) {
	data, err := EncodeEvent(Event{ExchangeID: "x"})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	if bytes.Contains(data, []byte("ExchangeID")) {
		t.Error("encoded event contains field names")
	}
}

func TestDecodeEvents(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, id := range []string{"a", "b", "c"} {
		if err := enc.Encode(Event{ExchangeID: id}); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	events, err := DecodeEvents(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeEvents failed: %v", err)
	}
	if len(events) != 3 || events[2].ExchangeID != "c" {
		t.Errorf("got %+v", events)
	}

	// A trailing partial event is reported with the events read so far.
	events, err = DecodeEvents(buf.Bytes()[:buf.Len()-1])
	if err == nil {
		t.Error("expected error for truncated stream")
	}
	if len(events) != 2 {
		t.Errorf("got %d events before error, want 2", len(events))
	}
}
