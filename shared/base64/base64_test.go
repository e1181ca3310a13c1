package base64_test

import (
	"testing"

	"hotel/shared/base64"

	"github.com/stretchr/testify/assert"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "png", input: "data:image/png;base64,iVBORw0KGgo=", expected: "image/png"},
		{name: "webp upper case", input: "DATA:Image/WEBP;base64,UklGRg==", expected: "image/webp"},
		{name: "parameters dropped", input: "data:image/svg+xml;charset=utf-8;base64,PHN2Zz4=", expected: "image/svg+xml"},
		{name: "missing scheme", input: "image/png;base64,iVBORw0KGgo=", expected: ""},
		{name: "not base64 encoded", input: "data:image/png,iVBORw0KGgo=", expected: ""},
		{name: "empty media type", input: "data:;base64,", expected: ""},
		{name: "plain url", input: "https://cdn.example.com/rooms/101.png", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}
