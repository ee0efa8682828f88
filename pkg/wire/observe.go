package wire

import "fmt"

// ObserveFlag is the Observe option value sent in a GET request.
type ObserveFlag uint8

const (
	// ObserveRegister asks the server to add the client as an observer.
	ObserveRegister ObserveFlag = 0

	// ObserveDeregister asks the server to remove the client.
	ObserveDeregister ObserveFlag = 1
)

// String returns the flag name.
func (f ObserveFlag) String() string {
	switch f {
	case ObserveRegister:
		return "REGISTER"
	case ObserveDeregister:
		return "DEREGISTER"
	default:
		return "UNKNOWN"
	}
}

// ParseObserveFlag converts a decoded Observe value to a request flag.
func ParseObserveFlag(v uint32) (ObserveFlag, error) {
	switch v {
	case 0:
		return ObserveRegister, nil
	case 1:
		return ObserveDeregister, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidObserve, v)
	}
}
