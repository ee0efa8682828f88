package commands

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/mash-protocol/mash-coap/pkg/log"
	"github.com/mash-protocol/mash-coap/pkg/wire"
)

// Stats holds aggregate statistics about a capture file.
type Stats struct {
	TotalEvents       int
	EventsByLayer     map[log.Layer]int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	MessagesByCode    map[wire.Code]int
	Exchanges         map[string]*ExchangeStats
	Errors            int
	Bytes             int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// ExchangeStats holds statistics for a single exchange.
type ExchangeStats struct {
	FirstSeen  time.Time
	LastSeen   time.Time
	Events     int
	Errors     int
	RemoteAddr string
}

// CollectStats reads the capture file and aggregates its events.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByLayer:     make(map[log.Layer]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		MessagesByCode:    make(map[wire.Code]int),
		Exchanges:         make(map[string]*ExchangeStats),
	}

	for event, err := range reader.Events() {
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByLayer[event.Layer]++
		stats.EventsByCategory[event.Category]++
		stats.EventsByDirection[event.Direction]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		ex, ok := stats.Exchanges[event.ExchangeID]
		if !ok {
			ex = &ExchangeStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Exchanges[event.ExchangeID] = ex
		}
		ex.Events++
		if event.Timestamp.After(ex.LastSeen) {
			ex.LastSeen = event.Timestamp
		}
		if event.RemoteAddr != "" && ex.RemoteAddr == "" {
			ex.RemoteAddr = event.RemoteAddr
		}

		if event.Datagram != nil {
			stats.Bytes += event.Datagram.Size
		}
		if event.Message != nil {
			stats.MessagesByCode[event.Message.Code]++
		}
		if event.Error != nil {
			stats.Errors++
			ex.Errors++
		}
	}

	return stats, nil
}

// RunStats analyzes the capture file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== CoAP Capture Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Datagram Bytes: %d\n", stats.Bytes)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerTransport, log.LayerWire} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryMessage, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.MessagesByCode) > 0 {
		fmt.Fprintln(w, "Messages by Code:")
		codes := make([]wire.Code, 0, len(stats.MessagesByCode))
		for c := range stats.MessagesByCode {
			codes = append(codes, c)
		}
		slices.Sort(codes)
		for _, c := range codes {
			fmt.Fprintf(w, "  %-28s %d\n", codeLabel(c)+":", stats.MessagesByCode[c])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Exchanges: %d\n", len(stats.Exchanges))
	if len(stats.Exchanges) > 0 {
		type exchangeInfo struct {
			id    string
			stats *ExchangeStats
		}
		exchanges := make([]exchangeInfo, 0, len(stats.Exchanges))
		for id, es := range stats.Exchanges {
			exchanges = append(exchanges, exchangeInfo{id, es})
		}
		slices.SortFunc(exchanges, func(a, b exchangeInfo) int {
			return a.stats.FirstSeen.Compare(b.stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, ex := range exchanges {
			duration := ex.stats.LastSeen.Sub(ex.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenExchangeID(ex.id), ex.stats.Events, duration)
			if ex.stats.RemoteAddr != "" {
				fmt.Fprintf(w, "           Remote: %s\n", ex.stats.RemoteAddr)
			}
			if ex.stats.Errors > 0 {
				fmt.Fprintf(w, "           Errors: %d\n", ex.stats.Errors)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
