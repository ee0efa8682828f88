package wire

import (
	"errors"
	"fmt"
	"net"

	"github.com/mash-protocol/mash-coap/pkg/fixed"
)

// Request is a received or outgoing request.
type Request struct {
	// Message is the underlying packet.
	Message *Packet

	// Source is the peer that sent the request (nil for outgoing requests).
	Source net.Addr
}

// NewRequest wraps a packet received from source.
func NewRequest(msg *Packet, source net.Addr) *Request {
	return &Request{Message: msg, Source: source}
}

// Method returns the request method, or MethodUnknown if the packet is
// not a request.
func (r *Request) Method() Method {
	if c, ok := r.Message.Class().(RequestClass); ok {
		return c.Method
	}
	return MethodUnknown
}

// Path joins the Uri-Path options with "/". The result is bounded by
// PathMaxSize; a longer path returns ErrPathTooLong.
func (r *Request) Path() (string, error) {
	var storage [PathMaxSize]byte
	buf := fixed.BufferFrom(storage[:])

	first := true
	for opt := range r.Message.OptionsByNumber(OptionURIPath) {
		if !first {
			if err := buf.WriteByte('/'); err != nil {
				return "", pathError(err)
			}
		}
		first = false
		if _, err := buf.Write(opt.Value); err != nil {
			return "", pathError(err)
		}
	}
	return buf.String(), nil
}

func pathError(err error) error {
	if errors.Is(err, fixed.ErrCapacity) {
		return fmt.Errorf("%w: limit %d bytes", ErrPathTooLong, PathMaxSize)
	}
	return err
}

// ObserveFlag returns the Observe flag of the request. The boolean is false
// if the option is absent.
func (r *Request) ObserveFlag() (ObserveFlag, bool, error) {
	v, ok, err := r.Message.ObserveValue()
	if err != nil || !ok {
		return 0, ok, err
	}
	flag, err := ParseObserveFlag(v)
	if err != nil {
		return 0, true, err
	}
	return flag, true, nil
}
