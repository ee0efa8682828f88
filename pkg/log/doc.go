// Package log provides structured protocol capture for CoAP exchanges.
//
// This package defines the Logger interface and Event types for capturing
// protocol-level events at the transport (raw datagram) and wire (decoded
// packet) layers. It is separate from operational logging (slog) - protocol
// capture provides a complete machine-readable event trace for debugging
// and analysis.
//
// The codec in package wire never logs. Callers capture traffic through
// package exchange, which emits events to a Logger.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/var/log/coap/node.clog")
//
//	// Both: use MultiLogger
//	cfg.ProtocolLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
//   - Transport: Raw datagram bytes (DatagramEvent)
//   - Wire: Decoded packets (MessageEvent)
//   - Errors at either layer (ErrorEventData)
//
// # File Format
//
// Capture files are a stream of CBOR-encoded events with the .clog
// extension. Reader streams them back with optional filtering.
package log
