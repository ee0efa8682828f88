package wire

// Response is a received or outgoing response.
type Response struct {
	// Message is the underlying packet.
	Message *Packet
}

// NewResponse wraps a packet.
func NewResponse(msg *Packet) *Response {
	return &Response{Message: msg}
}

// Status returns the response status, or StatusUnknown if the packet is
// not a response.
func (r *Response) Status() Status {
	if c, ok := r.Message.Class().(ResponseClass); ok {
		return c.Status
	}
	return StatusUnknown
}
