package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalStatusGizi(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		known bool
	}{
		{"Gizi Baik", "Gizi Baik", true},
		{"gizi baik", "Gizi Baik", true},
		{"  OBESITAS ", "Obesitas", true},
		{"beresiko gizi lebih", "Beresiko Gizi Lebih", true},
		{" Tidak Diketahui ", "Tidak Diketahui", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalStatusGizi(tt.in)
		require.Equal(t, tt.want, got, tt.in)
		require.Equal(t, tt.known, ok, tt.in)
		require.Equal(t, tt.known, IsKnownStatusGizi(tt.in), tt.in)
	}
}
