package wire

import (
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestFromDecodedPacket(t *testing.T) {
	p, err := FromBytes(mustHex(t, "44 01 84 9e 51 55 77 e8 b2 48 69 04 54 65 73 74 43 61 3d 31"))
	require.NoError(t, err)

	src := &net.UDPAddr{IP: net.IPv4(192, 0, 2, 1), Port: 5683}
	req := NewRequest(p, src)

	assert.Equal(t, MethodGet, req.Method())
	assert.Equal(t, src, req.Source)

	path, err := req.Path()
	require.NoError(t, err)
	assert.Equal(t, "Hi/Test", path)

	_, ok, err := req.ObserveFlag()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRequestMethodUnknownForResponse(t *testing.T) {
	p := NewPacket(Acknowledgement, ResponseClass{Status: StatusContent}, 1, 1, nil, nil, nil)
	assert.Equal(t, MethodUnknown, NewRequest(p, nil).Method())

	p = NewPacket(Confirmable, ReservedClass{Raw: 0x08}, 1, 1, nil, nil, nil)
	assert.Equal(t, MethodUnknown, NewRequest(p, nil).Method())
}

func TestRequestPath(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
		wantErr  error
	}{
		{name: "no path", want: ""},
		{name: "single segment", segments: []string{"temp"}, want: "temp"},
		{name: "nested", segments: []string{"a", "b", "c"}, want: "a/b/c"},
		{name: "at limit", segments: []string{strings.Repeat("x", PathMaxSize)}, want: strings.Repeat("x", PathMaxSize)},
		{name: "segment over limit", segments: []string{strings.Repeat("x", PathMaxSize+1)}, wantErr: ErrPathTooLong},
		{name: "separator over limit", segments: []string{strings.Repeat("x", PathMaxSize), "y"}, wantErr: ErrPathTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			for _, s := range tt.segments {
				opts = append(opts, StringOption(OptionURIPath, s))
			}
			req := NewRequest(NewPacket(Confirmable, RequestClass{Method: MethodGet}, 1, 1, nil, opts, nil), nil)

			got, err := req.Path()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestObserveFlag(t *testing.T) {
	tests := []struct {
		name    string
		value   uint32
		want    ObserveFlag
		wantErr error
	}{
		{"register", 0, ObserveRegister, nil},
		{"deregister", 1, ObserveDeregister, nil},
		{"sequence number", 2, 0, ErrInvalidObserve},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPacket(Confirmable, RequestClass{Method: MethodGet}, 1, 1, nil,
				[]Option{UintOption(OptionObserve, tt.value)}, nil)

			flag, ok, err := NewRequest(p, nil).ObserveFlag()
			assert.True(t, ok)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, flag)
		})
	}
}

func TestResponseStatus(t *testing.T) {
	p, err := FromBytes(mustHex(t, "64 45 13 FD D0 E2 4D AC FF 48 65 6C 6C 6F"))
	require.NoError(t, err)
	assert.Equal(t, StatusContent, NewResponse(p).Status())

	req := NewPacket(Confirmable, RequestClass{Method: MethodGet}, 1, 1, nil, nil, nil)
	assert.Equal(t, StatusUnknown, NewResponse(req).Status())
	assert.Equal(t, StatusUnknown, NewResponse(NewPacket(Reset, nil, 1, 1, nil, nil, nil)).Status())
}
