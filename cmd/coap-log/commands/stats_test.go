package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mash-protocol/mash-coap/pkg/log"
	"github.com/mash-protocol/mash-coap/pkg/wire"
)

func TestStatsCounts(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, ExchangeID: "ex-aaaa-1111", Layer: log.LayerTransport, RemoteAddr: "192.0.2.7:5683", Datagram: &log.DatagramEvent{Size: 20}},
		{Timestamp: ts.Add(time.Second), ExchangeID: "ex-aaaa-1111", Layer: log.LayerWire, Message: &log.MessageEvent{Code: wire.Code(wire.MethodGet)}},
		{Timestamp: ts.Add(2 * time.Second), ExchangeID: "ex-bbbb-2222", Direction: log.DirectionOut, Layer: log.LayerWire, Message: &log.MessageEvent{Code: wire.Code(wire.StatusContent)}},
		{Timestamp: ts.Add(3 * time.Second), ExchangeID: "ex-bbbb-2222", Layer: log.LayerTransport, Datagram: &log.DatagramEvent{Size: 5}},
		{Timestamp: ts.Add(4 * time.Second), ExchangeID: "ex-bbbb-2222", Layer: log.LayerWire, Category: log.CategoryError, Error: &log.ErrorEventData{Message: "truncated"}},
	}

	stats, err := CollectStats(createTestLogFile(t, events))
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}

	if stats.TotalEvents != 5 {
		t.Errorf("TotalEvents = %d, want 5", stats.TotalEvents)
	}
	if stats.Bytes != 25 {
		t.Errorf("Bytes = %d, want 25", stats.Bytes)
	}
	if stats.EventsByLayer[log.LayerWire] != 3 {
		t.Errorf("wire events = %d, want 3", stats.EventsByLayer[log.LayerWire])
	}
	if stats.EventsByDirection[log.DirectionOut] != 1 {
		t.Errorf("out events = %d, want 1", stats.EventsByDirection[log.DirectionOut])
	}
	if stats.MessagesByCode[wire.Code(wire.MethodGet)] != 1 {
		t.Errorf("GET count = %d, want 1", stats.MessagesByCode[wire.Code(wire.MethodGet)])
	}
	if len(stats.Exchanges) != 2 {
		t.Fatalf("exchanges = %d, want 2", len(stats.Exchanges))
	}
	if ex := stats.Exchanges["ex-aaaa-1111"]; ex.RemoteAddr != "192.0.2.7:5683" || ex.Events != 2 {
		t.Errorf("exchange a = %+v", ex)
	}
	if ex := stats.Exchanges["ex-bbbb-2222"]; ex.Errors != 1 || ex.LastSeen.Sub(ex.FirstSeen) != 2*time.Second {
		t.Errorf("exchange b = %+v", ex)
	}
	if !stats.TimeRange.Start.Equal(ts) || !stats.TimeRange.End.Equal(ts.Add(4*time.Second)) {
		t.Errorf("time range = %v..%v", stats.TimeRange.Start, stats.TimeRange.End)
	}
}

func TestRunStatsOutput(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, ExchangeID: "ex-aaaa-1111", Layer: log.LayerWire, Message: &log.MessageEvent{Code: wire.Code(wire.MethodPut)}},
		{Timestamp: ts, ExchangeID: "ex-aaaa-1111", Layer: log.LayerWire, Category: log.CategoryError, Error: &log.ErrorEventData{Message: "x"}},
	}

	var buf bytes.Buffer
	if err := RunStats(createTestLogFile(t, events), &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"=== CoAP Capture Statistics ===",
		"Total Events: 2",
		"WIRE:",
		"MESSAGE:",
		"ERROR:",
		"PUT:",
		"Exchanges: 1",
		"[ex-aaaa-]",
		"Errors: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestRunStatsEmptyFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunStats(createTestLogFile(t, nil), &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Time Range") {
		t.Errorf("empty capture should not print a time range:\n%s", buf.String())
	}
}
