package exchange

import (
	"errors"
	"log/slog"

	"github.com/mash-protocol/mash-coap/pkg/log"
	"github.com/mash-protocol/mash-coap/pkg/wire"
)

// DefaultMaxLogDataSize is the default number of raw bytes copied into
// capture events. It covers a full packet.
const DefaultMaxLogDataSize = wire.PacketMaxSize

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config configures a Tracer.
type Config struct {
	// ProtocolLogger receives capture events.
	// If nil, capture is disabled.
	ProtocolLogger log.Logger

	// Role is recorded on every event.
	Role log.Role

	// RemoteAddr labels events with the peer address (IP:port).
	RemoteAddr string

	// MaxLogDataSize caps the raw datagram and payload bytes copied into
	// each event. Zero records sizes only.
	MaxLogDataSize int

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with capture disabled.
func DefaultConfig() Config {
	return Config{
		ProtocolLogger: log.NoopLogger{},
		Role:           log.RoleClient,
		MaxLogDataSize: DefaultMaxLogDataSize,
	}
}

// Validate checks if the config is valid.
func (c *Config) Validate() error {
	if c.MaxLogDataSize < 0 || c.MaxLogDataSize > wire.PacketMaxSize {
		return ErrInvalidConfig
	}
	if c.Role != log.RoleClient && c.Role != log.RoleServer {
		return ErrInvalidConfig
	}
	return nil
}
