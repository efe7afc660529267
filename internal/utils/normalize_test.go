package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "UTI Adulto", want: "uti adulto"},
		{in: "  uti adulto  ", want: "uti adulto"},
		{in: "Centro Cirúrgico", want: "centro cirurgico"},
		{in: "UTI Pediátrica", want: "uti pediatrica"},
		{in: "Pronto-Socorro", want: "pronto-socorro"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in), "entrada %q", tt.in)
	}
}

func TestTruncateDate(t *testing.T) {
	assert.Equal(t, "2026-01-02", TruncateDate("2026-01-02T15:04:05.000Z"))
	assert.Equal(t, "2026-01-02", TruncateDate("2026-01-02"))
	assert.Equal(t, "", TruncateDate(""))
}
