package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{0x00, "0.00"},
		{0x01, "0.01"},
		{0x45, "2.05"},
		{0x5F, "2.31"},
		{0x84, "4.04"},
		{0xA8, "5.08"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.String())
	}
}

func TestNewCode(t *testing.T) {
	assert.Equal(t, Code(StatusNotFound), NewCode(4, 4))
	assert.Equal(t, uint8(4), NewCode(4, 4).ClassDigit())
	assert.Equal(t, uint8(4), NewCode(4, 4).Detail())
}

func TestClassFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Class
	}{
		{0x00, EmptyClass{}},
		{0x01, RequestClass{Method: MethodGet}},
		{0x07, RequestClass{Method: MethodIPatch}},
		{0x41, ResponseClass{Status: StatusCreated}},
		{0x5F, ResponseClass{Status: StatusContinue}},
		{0x9D, ResponseClass{Status: StatusTooManyRequests}},
		{0xA8, ResponseClass{Status: StatusHopLimitReached}},
		{0x08, ReservedClass{Raw: 0x08}},
		{0x40, ReservedClass{Raw: 0x40}},
		{0x87, ReservedClass{Raw: 0x87}},
		{0xE0, ReservedClass{Raw: 0xE0}},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			got := ClassFromCode(tt.code)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.code, got.Code())
		})
	}
}

func TestClassFromCodeCoversEveryByte(t *testing.T) {
	for i := range 256 {
		c := Code(i)
		assert.Equal(t, c, ClassFromCode(c).Code(), "code %s", c)
	}
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "GET", MethodGet.String())
	assert.Equal(t, "iPATCH", MethodIPatch.String())
	assert.Equal(t, "UNKNOWN", MethodUnknown.String())
	assert.False(t, MethodUnknown.IsValid())
	assert.False(t, Method(0x08).IsValid())
}

func TestStatusHelpers(t *testing.T) {
	assert.Equal(t, "Content", StatusContent.String())
	assert.Equal(t, "Unknown", Status(0x46).String())

	assert.True(t, StatusChanged.IsSuccess())
	assert.False(t, StatusChanged.IsClientError())
	assert.True(t, StatusNotFound.IsClientError())
	assert.True(t, StatusGatewayTimeout.IsServerError())
	assert.False(t, StatusUnknown.IsValid())
	assert.False(t, Status(0x46).IsSuccess())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "CON", Confirmable.String())
	assert.Equal(t, "NON", NonConfirmable.String())
	assert.Equal(t, "ACK", Acknowledgement.String())
	assert.Equal(t, "RST", Reset.String())
	assert.Equal(t, "UNKNOWN", Type(4).String())
	assert.False(t, Type(4).IsValid())
}
