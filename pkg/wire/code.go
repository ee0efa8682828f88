package wire

import "fmt"

// Code is the raw code byte: a 3-bit class and a 5-bit detail, written c.dd.
type Code uint8

// NewCode builds a code from its class and detail.
func NewCode(class, detail uint8) Code {
	return Code(class<<5 | detail&0x1F)
}

// ClassDigit returns the 3-bit class (0 request, 2 success, 4 client error,
// 5 server error).
func (c Code) ClassDigit() uint8 { return uint8(c) >> 5 }

// Detail returns the 5-bit detail.
func (c Code) Detail() uint8 { return uint8(c) & 0x1F }

// String returns the code in c.dd notation.
func (c Code) String() string {
	return fmt.Sprintf("%d.%02d", c.ClassDigit(), c.Detail())
}

// Method is a request method. Its value is the request code byte.
type Method uint8

const (
	// MethodUnknown is returned for messages that are not requests.
	MethodUnknown Method = 0x00

	MethodGet    Method = 0x01
	MethodPost   Method = 0x02
	MethodPut    Method = 0x03
	MethodDelete Method = 0x04
	MethodFetch  Method = 0x05
	MethodPatch  Method = 0x06
	MethodIPatch Method = 0x07
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	case MethodFetch:
		return "FETCH"
	case MethodPatch:
		return "PATCH"
	case MethodIPatch:
		return "iPATCH"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the method is a registered request method.
func (m Method) IsValid() bool {
	return m >= MethodGet && m <= MethodIPatch
}

// Status is a response status. Its value is the response code byte.
type Status uint8

const (
	// StatusUnknown is returned for messages that are not responses.
	StatusUnknown Status = 0x00

	// 2.xx Success
	StatusCreated  Status = 0x41
	StatusDeleted  Status = 0x42
	StatusValid    Status = 0x43
	StatusChanged  Status = 0x44
	StatusContent  Status = 0x45
	StatusContinue Status = 0x5F

	// 4.xx Client Error
	StatusBadRequest               Status = 0x80
	StatusUnauthorized             Status = 0x81
	StatusBadOption                Status = 0x82
	StatusForbidden                Status = 0x83
	StatusNotFound                 Status = 0x84
	StatusMethodNotAllowed         Status = 0x85
	StatusNotAcceptable            Status = 0x86
	StatusRequestEntityIncomplete  Status = 0x88
	StatusConflict                 Status = 0x89
	StatusPreconditionFailed       Status = 0x8C
	StatusRequestEntityTooLarge    Status = 0x8D
	StatusUnsupportedContentFormat Status = 0x8F
	StatusUnprocessableEntity      Status = 0x96
	StatusTooManyRequests          Status = 0x9D

	// 5.xx Server Error
	StatusInternalServerError  Status = 0xA0
	StatusNotImplemented       Status = 0xA1
	StatusBadGateway           Status = 0xA2
	StatusServiceUnavailable   Status = 0xA3
	StatusGatewayTimeout       Status = 0xA4
	StatusProxyingNotSupported Status = 0xA5
	StatusHopLimitReached      Status = 0xA8
)

var statusNames = map[Status]string{
	StatusCreated:                  "Created",
	StatusDeleted:                  "Deleted",
	StatusValid:                    "Valid",
	StatusChanged:                  "Changed",
	StatusContent:                  "Content",
	StatusContinue:                 "Continue",
	StatusBadRequest:               "BadRequest",
	StatusUnauthorized:             "Unauthorized",
	StatusBadOption:                "BadOption",
	StatusForbidden:                "Forbidden",
	StatusNotFound:                 "NotFound",
	StatusMethodNotAllowed:         "MethodNotAllowed",
	StatusNotAcceptable:            "NotAcceptable",
	StatusRequestEntityIncomplete:  "RequestEntityIncomplete",
	StatusConflict:                 "Conflict",
	StatusPreconditionFailed:       "PreconditionFailed",
	StatusRequestEntityTooLarge:    "RequestEntityTooLarge",
	StatusUnsupportedContentFormat: "UnsupportedContentFormat",
	StatusUnprocessableEntity:      "UnprocessableEntity",
	StatusTooManyRequests:          "TooManyRequests",
	StatusInternalServerError:      "InternalServerError",
	StatusNotImplemented:           "NotImplemented",
	StatusBadGateway:               "BadGateway",
	StatusServiceUnavailable:       "ServiceUnavailable",
	StatusGatewayTimeout:           "GatewayTimeout",
	StatusProxyingNotSupported:     "ProxyingNotSupported",
	StatusHopLimitReached:          "HopLimitReached",
}

// String returns the status name.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsValid returns true if the status is a registered response code.
func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// IsSuccess returns true for 2.xx statuses.
func (s Status) IsSuccess() bool {
	return s.IsValid() && Code(s).ClassDigit() == 2
}

// IsClientError returns true for 4.xx statuses.
func (s Status) IsClientError() bool {
	return s.IsValid() && Code(s).ClassDigit() == 4
}

// IsServerError returns true for 5.xx statuses.
func (s Status) IsServerError() bool {
	return s.IsValid() && Code(s).ClassDigit() == 5
}

// Class is the decoded meaning of a code byte. It is one of EmptyClass,
// RequestClass, ResponseClass or ReservedClass.
type Class interface {
	// Code returns the code byte for this class.
	Code() Code

	isClass()
}

// EmptyClass is code 0.00, used by empty ACK, RST and ping messages.
type EmptyClass struct{}

// RequestClass carries a request method.
type RequestClass struct {
	Method Method
}

// ResponseClass carries a response status.
type ResponseClass struct {
	Status Status
}

// ReservedClass carries a code byte that is neither empty nor a
// registered method or status. It encodes back to the same byte.
type ReservedClass struct {
	Raw Code
}

func (EmptyClass) Code() Code      { return 0 }
func (c RequestClass) Code() Code  { return Code(c.Method) }
func (c ResponseClass) Code() Code { return Code(c.Status) }
func (c ReservedClass) Code() Code { return c.Raw }

func (EmptyClass) isClass()    {}
func (RequestClass) isClass()  {}
func (ResponseClass) isClass() {}
func (ReservedClass) isClass() {}

// ClassFromCode classifies a code byte. Unregistered codes are returned as
// ReservedClass rather than rejected.
func ClassFromCode(c Code) Class {
	switch {
	case c == 0:
		return EmptyClass{}
	case Method(c).IsValid():
		return RequestClass{Method: Method(c)}
	case Status(c).IsValid():
		return ResponseClass{Status: Status(c)}
	default:
		return ReservedClass{Raw: c}
	}
}

// validateClass checks that class encodes to a code byte ClassFromCode
// maps back to the same variant.
func validateClass(class Class) error {
	switch c := class.(type) {
	case nil, EmptyClass:
		return nil
	case RequestClass:
		if !c.Method.IsValid() {
			return fmt.Errorf("%w: request method %s", ErrInvalidCode, Code(c.Method))
		}
	case ResponseClass:
		if !c.Status.IsValid() {
			return fmt.Errorf("%w: response status %s", ErrInvalidCode, Code(c.Status))
		}
	case ReservedClass:
		if _, ok := ClassFromCode(c.Raw).(ReservedClass); !ok {
			return fmt.Errorf("%w: reserved code %s is assigned", ErrInvalidCode, c.Raw)
		}
	default:
		return fmt.Errorf("%w: unknown class %T", ErrInvalidCode, class)
	}
	return nil
}

// classCode returns the code byte for class, treating nil as empty.
func classCode(class Class) Code {
	if class == nil {
		return 0
	}
	return class.Code()
}
