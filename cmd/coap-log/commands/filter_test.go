package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/mash-coap/pkg/log"
	"github.com/mash-protocol/mash-coap/pkg/wire"
)

func filterFixture(t *testing.T) string {
	t.Helper()
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	return createTestLogFile(t, []log.Event{
		{Timestamp: ts, ExchangeID: "a", Direction: log.DirectionIn, Layer: log.LayerTransport, RemoteAddr: "192.0.2.1:5683", Datagram: &log.DatagramEvent{Size: 9}},
		{Timestamp: ts.Add(time.Second), ExchangeID: "a", Direction: log.DirectionIn, Layer: log.LayerWire, RemoteAddr: "192.0.2.1:5683", Message: &log.MessageEvent{MessageID: 0x10}},
		{Timestamp: ts.Add(2 * time.Second), ExchangeID: "b", Direction: log.DirectionOut, Layer: log.LayerWire, Message: &log.MessageEvent{MessageID: 0x11}},
		{Timestamp: ts.Add(3 * time.Second), ExchangeID: "b", Direction: log.DirectionIn, Layer: log.LayerWire, Category: log.CategoryError, Error: &log.ErrorEventData{Message: "truncated"}},
	})
}

func TestRunFilter(t *testing.T) {
	input := filterFixture(t)

	tests := []struct {
		name string
		opts FilterOptions
		want int
	}{
		{"all", FilterOptions{}, 4},
		{"exchange", FilterOptions{ExchangeID: "b"}, 2},
		{"remote", FilterOptions{RemoteAddr: "192.0.2.1:5683"}, 2},
		{"hex message id", FilterOptions{MessageID: "0x11"}, 1},
		{"decimal message id", FilterOptions{MessageID: "16"}, 1},
		{"layer and direction", FilterOptions{Layer: "wire", Direction: "in"}, 2},
		{"category", FilterOptions{Category: "error"}, 1},
		{"time window", FilterOptions{TimeStart: "2026-01-28T10:00:01Z", TimeEnd: "2026-01-28T10:00:03Z"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Output = filepath.Join(t.TempDir(), "out.clog")

			n, err := RunFilter(input, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)

			stats, err := CollectStats(tt.opts.Output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stats.TotalEvents)
		})
	}
}

func TestRunFilterRejectsBadOptions(t *testing.T) {
	input := filterFixture(t)
	out := filepath.Join(t.TempDir(), "out.clog")

	for _, opts := range []FilterOptions{
		{Output: out, MessageID: "70000"},
		{Output: out, MessageID: "abc"},
		{Output: out, TimeStart: "yesterday"},
		{Output: out, TimeEnd: "tomorrow"},
		{Output: out, Layer: "service"},
		{Output: out, Direction: "up"},
		{Output: out, Category: "state"},
	} {
		_, err := RunFilter(input, opts)
		assert.Error(t, err, "%+v", opts)
	}
}

func TestRunFilterMessageFields(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	input := createTestLogFile(t, []log.Event{
		{Timestamp: ts, ExchangeID: "a", Layer: log.LayerWire, Message: &log.MessageEvent{
			Type: wire.Confirmable, Code: wire.Code(wire.MethodGet), Token: []byte{0xCA, 0xFE}, Path: "sensors/temp",
		}},
		{Timestamp: ts, ExchangeID: "a", Layer: log.LayerWire, Direction: log.DirectionOut, Message: &log.MessageEvent{
			Type: wire.Acknowledgement, Code: wire.Code(wire.StatusContent), Token: []byte{0xCA, 0xFE},
		}},
		{Timestamp: ts, ExchangeID: "b", Layer: log.LayerWire, Message: &log.MessageEvent{
			Type: wire.NonConfirmable, Code: wire.Code(wire.MethodPut), Path: "actuators/fan",
		}},
	})

	tests := []struct {
		name string
		opts FilterOptions
		want int
	}{
		{"type", FilterOptions{Type: "ack"}, 1},
		{"code by name", FilterOptions{Code: "get"}, 1},
		{"code dotted", FilterOptions{Code: "2.05"}, 1},
		{"token", FilterOptions{Token: "ca fe"}, 2},
		{"path", FilterOptions{Path: "/actuators"}, 1},
		{"path and type", FilterOptions{Path: "sensors", Type: "NON"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Output = filepath.Join(t.TempDir(), "out.clog")
			n, err := RunFilter(input, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}

	for _, opts := range []FilterOptions{{Type: "ping"}, {Code: "9.99"}, {Code: "2.5"}, {Token: "xyz"}} {
		opts.Output = filepath.Join(t.TempDir(), "out.clog")
		_, err := RunFilter(input, opts)
		assert.Error(t, err, "%+v", opts)
	}
}

func TestParseCodeFlag(t *testing.T) {
	tests := []struct {
		in   string
		want wire.Code
	}{
		{"GET", wire.Code(wire.MethodGet)},
		{"ipatch", wire.Code(wire.MethodIPatch)},
		{"0.00", 0},
		{"2.05", wire.Code(wire.StatusContent)},
		{"4.04", wire.Code(wire.StatusNotFound)},
		{"7.31", wire.NewCode(7, 31)},
	}
	for _, tt := range tests {
		got, err := ParseCodeFlag(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, in := range []string{"", "8.00", "2.32", "2.5", "x.01", "FOO"} {
		_, err := ParseCodeFlag(in)
		assert.Error(t, err, in)
	}
}
