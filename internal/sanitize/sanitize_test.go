package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateToken(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"iso date passes through", "2024-01-01", "2024-01-01"},
		{"letters removed", "2024-01-01abc", "2024-01-01"},
		{"path traversal removed", "../../etc/passwd", "--"},
		{"control chars removed", "2024\x00-01\x1f-01", "2024-01-01"},
		{"empty input", "", ""},
		{"nothing survives", "no digits here!", ""},
		{"unicode removed", "2024年-01-01", "2024-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateToken(tt.raw)
			assert.Equal(t, tt.want, got)
			for _, r := range got {
				assert.True(t, (r >= '0' && r <= '9') || r == '-')
			}
		})
	}
}

func TestLanguageToken(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain language passes through", "English", "English"},
		{"digits removed", "English123", "English"},
		{"separators removed", "Eng/../lish", "English"},
		{"spaces removed", "T u r k i s h", "Turkish"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LanguageToken(tt.raw)
			assert.Equal(t, tt.want, got)
			for _, r := range got {
				assert.True(t, (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'))
			}
		})
	}
}

func TestStripControlChars(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"clean path untouched", "uploads/2024-01-01_English.pdf", "uploads/2024-01-01_English.pdf"},
		{"c0 removed", "uploads/2024\x00-01-01\x1f_English.pdf", "uploads/2024-01-01_English.pdf"},
		{"del removed", "a\x7fb", "ab"},
		{"c1 removed", "abc", "abc"},
		{"boundary survivors", "a b c", "a b c"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripControlChars(tt.raw))
		})
	}
}

func TestStripControlCharsIdempotent(t *testing.T) {
	inputs := []string{
		"uploads/2024-01-01_English.pdf",
		"\x00\x01\x02",
		"mixed\x1f control chars",
		"",
		"plain",
	}
	for _, s := range inputs {
		once := StripControlChars(s)
		assert.Equal(t, once, StripControlChars(once))
	}
}
