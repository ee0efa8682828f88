package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mash-protocol/mash-coap/pkg/log"
	"github.com/mash-protocol/mash-coap/pkg/wire"
)

// FilterOptions specifies filtering criteria for the filter command.
type FilterOptions struct {
	Output     string
	ExchangeID string
	RemoteAddr string
	MessageID  string
	Type       string
	Code       string
	Token      string
	Path       string
	TimeStart  string
	TimeEnd    string
	Layer      string
	Direction  string
	Category   string
}

// buildFilter converts command-line options into a log.Filter.
func buildFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{
		ExchangeID: opts.ExchangeID,
		RemoteAddr: opts.RemoteAddr,
		PathPrefix: opts.Path,
	}

	if opts.Type != "" {
		typ, err := ParseTypeFlag(opts.Type)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Type = &typ
	}

	if opts.Code != "" {
		code, err := ParseCodeFlag(opts.Code)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Code = &code
	}

	if opts.Token != "" {
		token, err := parseHex(opts.Token)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid token: %w", err)
		}
		filter.Token = token
	}

	if opts.MessageID != "" {
		mid, err := strconv.ParseUint(opts.MessageID, 0, 16)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid message ID: %w", err)
		}
		v := uint16(mid)
		filter.MessageID = &v
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	if opts.Layer != "" {
		l, err := ParseLayerFlag(opts.Layer)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Layer = &l
	}

	if opts.Direction != "" {
		d, err := ParseDirectionFlag(opts.Direction)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Direction = &d
	}

	if opts.Category != "" {
		c, err := ParseCategoryFlag(opts.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}

	return filter, nil
}

// ParseTypeFlag parses a message type (con, non, ack, rst; case-insensitive).
func ParseTypeFlag(s string) (wire.Type, error) {
	for t := wire.Confirmable; t <= wire.Reset; t++ {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("invalid type: %s (must be con, non, ack or rst)", s)
}

// ParseCodeFlag parses a code written as c.dd (2.05) or as a method name
// (GET).
func ParseCodeFlag(s string) (wire.Code, error) {
	for m := wire.MethodGet; m <= wire.MethodIPatch; m++ {
		if strings.EqualFold(s, m.String()) {
			return wire.Code(m), nil
		}
	}

	class, detail, ok := strings.Cut(s, ".")
	if ok {
		c, errC := strconv.ParseUint(class, 10, 3)
		d, errD := strconv.ParseUint(detail, 10, 5)
		if errC == nil && errD == nil && len(detail) == 2 {
			return wire.NewCode(uint8(c), uint8(d)), nil
		}
	}
	return 0, fmt.Errorf("invalid code: %s (use c.dd or a method name)", s)
}

// RunFilter filters the capture file and writes matching events to a new
// file. It returns the number of events written.
func RunFilter(path string, opts FilterOptions) (int, error) {
	filter, err := buildFilter(opts)
	if err != nil {
		return 0, err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}

	count := 0
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Close()
			return count, fmt.Errorf("failed to read event: %w", err)
		}

		logger.Log(event)
		count++
	}

	if err := logger.Close(); err != nil {
		return count, fmt.Errorf("failed to close output: %w", err)
	}
	if n := logger.Dropped(); n > 0 {
		return count, fmt.Errorf("failed to write %d events", n)
	}
	return count, nil
}
