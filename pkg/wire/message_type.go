package wire

// Type is the 2-bit message type carried in the header.
type Type uint8

const (
	// Confirmable messages require an acknowledgement.
	Confirmable Type = 0

	// NonConfirmable messages do not require an acknowledgement.
	NonConfirmable Type = 1

	// Acknowledgement acknowledges a Confirmable message.
	Acknowledgement Type = 2

	// Reset indicates a message was received but could not be processed.
	Reset Type = 3
)

// String returns the message type name.
func (t Type) String() string {
	switch t {
	case Confirmable:
		return "CON"
	case NonConfirmable:
		return "NON"
	case Acknowledgement:
		return "ACK"
	case Reset:
		return "RST"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the type fits the 2-bit field.
func (t Type) IsValid() bool {
	return t <= Reset
}
