package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"zero", 0, "0 B"},
		{"bytes", 512, "512 B"},
		{"one kib", 1024, "1.0 KiB"},
		{"fractional kib", 1536, "1.5 KiB"},
		{"one mib", 1024 * 1024, "1.0 MiB"},
		{"one gib", 1024 * 1024 * 1024, "1.0 GiB"},
		{"one tib", 1024 * 1024 * 1024 * 1024, "1.0 TiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.in))
		})
	}
}

func TestFormatBytesWithSign(t *testing.T) {
	assert.Equal(t, "+ 1.5 KiB", FormatBytesWithSign(1536))
	assert.Equal(t, "- 1.5 KiB", FormatBytesWithSign(-1536))
	assert.Equal(t, "0 B", FormatBytesWithSign(0))
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "00:00:00.000"},
		{"sub-second", 0.5, "00:00:00.500"},
		{"seconds", 42, "00:00:42.000"},
		{"minutes", 90.25, "00:01:30.250"},
		{"hours", 3723.042, "01:02:03.042"},
		{"negative clamps", -5, "00:00:00.000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock(tt.in))
		})
	}
}
