package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err      error
		expected ErrorKind
	}{
		{nil, ErrorKindNone},
		{fmt.Errorf("%w: GET https://dog.ceo: timeout", ErrNetwork), ErrorKindNetwork},
		{fmt.Errorf("%w: missing message", ErrUpstreamProtocol), ErrorKindUpstreamProtocol},
		{fmt.Errorf("%w: unknown format", ErrDecode), ErrorKindDecode},
		{fmt.Errorf("save: %w", fmt.Errorf("%w: mkdir Dogs", ErrIO)), ErrorKindIO},
		{errors.New("something else"), ErrorKindUnknown},
	}

	for _, test := range tests {
		result := KindOf(test.err)
		if result != test.expected {
			t.Errorf("KindOf(%v) = %s, expected %s", test.err, result, test.expected)
		}
	}
}

func TestErrorKind_String(t *testing.T) {
	if ErrorKindNone.String() != "none" {
		t.Errorf("Expected 'none', got '%s'", ErrorKindNone.String())
	}
	if ErrorKindIO.String() != "io" {
		t.Errorf("Expected 'io', got '%s'", ErrorKindIO.String())
	}
}
