package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mash-protocol/mash-coap/internal/vectors"
)

var vectorErrors = map[string]error{
	"truncated":            ErrTruncated,
	"unsupported_version":  ErrUnsupportedVersion,
	"invalid_token_length": ErrInvalidTokenLength,
	"malformed_option":     ErrMalformedOption,
	"malformed":            ErrMalformed,
	"capacity_exceeded":    ErrCapacityExceeded,
}

func TestConformanceVectors(t *testing.T) {
	suites, err := vectors.LoadDirectory("testdata/vectors")
	if err != nil {
		t.Fatalf("LoadDirectory failed: %v", err)
	}
	if len(suites) == 0 {
		t.Fatal("no vector suites found")
	}

	for _, s := range suites {
		for _, v := range s.Vectors {
			t.Run(s.Name+"/"+v.ID, func(t *testing.T) {
				input, err := v.Input()
				if err != nil {
					t.Fatalf("bad input: %v", err)
				}

				p, err := FromBytes(input)
				if v.Error != "" {
					want, ok := vectorErrors[v.Error]
					if !ok {
						t.Fatalf("unknown error name %q", v.Error)
					}
					if !errors.Is(err, want) {
						t.Fatalf("got %v, want %v", err, want)
					}
					return
				}
				if err != nil {
					t.Fatalf("FromBytes failed: %v", err)
				}
				checkExpectation(t, p, input, v.Expect)
			})
		}
	}
}

func checkExpectation(t *testing.T, p *Packet, input []byte, exp *vectors.Expectation) {
	t.Helper()

	version := 1
	if exp.Version != nil {
		version = *exp.Version
	}
	if int(p.Version()) != version {
		t.Errorf("Version: got %d, want %d", p.Version(), version)
	}
	if p.Type().String() != exp.Type {
		t.Errorf("Type: got %s, want %s", p.Type(), exp.Type)
	}
	if p.Code().String() != exp.Code {
		t.Errorf("Code: got %s, want %s", p.Code(), exp.Code)
	}
	if int(p.MessageID()) != exp.MessageID {
		t.Errorf("MessageID: got %d, want %d", p.MessageID(), exp.MessageID)
	}

	token, err := vectors.DecodeHex(exp.Token)
	if err != nil {
		t.Fatalf("bad token: %v", err)
	}
	if !bytes.Equal(p.Token(), token) {
		t.Errorf("Token: got %x, want %x", p.Token(), token)
	}

	if len(p.Options()) != len(exp.Options) {
		t.Fatalf("Options: got %d, want %d", len(p.Options()), len(exp.Options))
	}
	for i, spec := range exp.Options {
		value, err := spec.Bytes()
		if err != nil {
			t.Fatalf("bad option %d value: %v", i, err)
		}
		got := p.Options()[i]
		if uint32(got.Number) != spec.Number || !bytes.Equal(got.Value, value) {
			t.Errorf("option %d: got %d=%x, want %d=%x", i, got.Number, got.Value, spec.Number, value)
		}
	}

	payload, err := vectors.DecodeHex(exp.Payload)
	if err != nil {
		t.Fatalf("bad payload: %v", err)
	}
	if !bytes.Equal(p.Payload(), payload) {
		t.Errorf("Payload: got %x, want %x", p.Payload(), payload)
	}

	if exp.Reencode {
		out, err := p.Marshal()
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if !bytes.Equal(out, input) {
			t.Errorf("re-encode: got %x, want %x", out, input)
		}
	}
}
