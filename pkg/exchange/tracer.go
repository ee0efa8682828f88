// Package exchange records CoAP traffic passing through the codec.
//
// The codec in package wire is pure and never logs. A Tracer wraps decode
// and encode for one request/response exchange and reports every datagram,
// decoded packet and codec failure to a protocol Logger, tagged with a
// per-exchange UUID.
package exchange

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mash-protocol/mash-coap/pkg/fixed"
	"github.com/mash-protocol/mash-coap/pkg/log"
	"github.com/mash-protocol/mash-coap/pkg/wire"
)

// Tracer runs the codec for one exchange and captures what it sees.
// It is safe for concurrent use if the configured loggers are.
type Tracer struct {
	id     string
	cfg    Config
	logger log.Logger
	now    func() time.Time
}

// New creates a Tracer with a fresh exchange ID.
func New(cfg Config) (*Tracer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Tracer{
		id:     uuid.New().String(),
		cfg:    cfg,
		logger: log.OrNoop(cfg.ProtocolLogger),
		now:    time.Now,
	}, nil
}

// ID returns the exchange ID recorded on every event.
func (t *Tracer) ID() string { return t.id }

// Decode decodes an incoming datagram.
func (t *Tracer) Decode(data []byte) (*wire.Packet, error) {
	t.logger.Log(t.event(log.DirectionIn, log.LayerTransport, func(e *log.Event) {
		e.Datagram = log.NewDatagramEvent(data, t.cfg.MaxLogDataSize)
	}))

	p, err := wire.FromBytes(data)
	if err != nil {
		t.fail(log.DirectionIn, "decode", err)
		return nil, err
	}

	t.logger.Log(t.event(log.DirectionIn, log.LayerWire, func(e *log.Event) {
		e.Message = log.NewMessageEvent(p, t.cfg.MaxLogDataSize)
	}))
	t.debugLog("decoded packet", "packet", p.String())
	return p, nil
}

// Encode appends p to out.
func (t *Tracer) Encode(p *wire.Packet, out *fixed.Buffer) error {
	start := out.Len()
	if err := p.ToBytes(out); err != nil {
		t.fail(log.DirectionOut, "encode", err)
		return err
	}

	t.logger.Log(t.event(log.DirectionOut, log.LayerWire, func(e *log.Event) {
		e.Message = log.NewMessageEvent(p, t.cfg.MaxLogDataSize)
	}))
	t.logger.Log(t.event(log.DirectionOut, log.LayerTransport, func(e *log.Event) {
		e.Datagram = log.NewDatagramEvent(out.Bytes()[start:], t.cfg.MaxLogDataSize)
	}))
	t.debugLog("encoded packet", "packet", p.String(), "size", out.Len()-start)
	return nil
}

// Marshal encodes p into a new slice.
func (t *Tracer) Marshal(p *wire.Packet) ([]byte, error) {
	out := fixed.NewBuffer(wire.PacketMaxSize)
	if err := t.Encode(p, out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (t *Tracer) fail(dir log.Direction, context string, err error) {
	data := &log.ErrorEventData{
		Layer:   log.LayerWire,
		Message: err.Error(),
		Context: context,
	}
	if status, ok := StatusForError(err); ok {
		code := wire.Code(status)
		data.Code = &code
	}
	ev := t.event(dir, log.LayerWire, func(e *log.Event) { e.Error = data })
	ev.Category = log.CategoryError
	t.logger.Log(ev)
	t.debugLog(context+" failed", "error", err)
}

func (t *Tracer) event(dir log.Direction, layer log.Layer, fill func(*log.Event)) log.Event {
	e := log.Event{
		Timestamp:  t.now(),
		ExchangeID: t.id,
		Direction:  dir,
		Layer:      layer,
		Category:   log.CategoryMessage,
		LocalRole:  t.cfg.Role,
		RemoteAddr: t.cfg.RemoteAddr,
	}
	fill(&e)
	return e
}

// debugLog logs a debug message if logging is enabled.
func (t *Tracer) debugLog(msg string, args ...any) {
	if t.cfg.Logger != nil {
		t.cfg.Logger.Debug(msg, append([]any{slog.String("exchange_id", t.id)}, args...)...)
	}
}

// StatusForError returns the response status a server should send for a
// codec error. The boolean is false when the message must be silently
// dropped (unsupported version) or err is not a codec error.
func StatusForError(err error) (wire.Status, bool) {
	switch {
	case err == nil:
		return 0, false
	case errors.Is(err, wire.ErrUnsupportedVersion):
		return 0, false
	case errors.Is(err, wire.ErrCapacityExceeded):
		return wire.StatusRequestEntityTooLarge, true
	case errors.Is(err, wire.ErrPathTooLong), errors.Is(err, wire.ErrIncompatibleOptionValue):
		return wire.StatusBadOption, true
	case errors.Is(err, wire.ErrInvalidContentFormat):
		return wire.StatusUnsupportedContentFormat, true
	case errors.Is(err, wire.ErrTruncated),
		errors.Is(err, wire.ErrInvalidTokenLength),
		errors.Is(err, wire.ErrMalformedOption),
		errors.Is(err, wire.ErrMalformed),
		errors.Is(err, wire.ErrInvalidObserve):
		return wire.StatusBadRequest, true
	case errors.Is(err, wire.ErrBufferTooSmall),
		errors.Is(err, wire.ErrInvalidOptionOrder),
		errors.Is(err, wire.ErrOptionTooLarge),
		errors.Is(err, wire.ErrInvalidType),
		errors.Is(err, wire.ErrInvalidCode):
		return wire.StatusInternalServerError, true
	default:
		return 0, false
	}
}

// String returns a description for logging.
func (t *Tracer) String() string {
	return fmt.Sprintf("exchange %s (%s %s)", t.id, t.cfg.Role, t.cfg.RemoteAddr)
}
