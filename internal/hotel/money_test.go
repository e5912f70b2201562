package hotel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCents_String(t *testing.T) {
	require.Equal(t, "4000.00", Cents(400000).String())
	require.Equal(t, "0.05", Cents(5).String())
	require.Equal(t, "0.00", Cents(0).String())
	require.Equal(t, "-12.50", Cents(-1250).String())
}

func TestParseCents(t *testing.T) {
	tests := []struct {
		in      string
		want    Cents
		wantErr bool
	}{
		{"4000.00", 400000, false},
		{"3500.5", 350050, false},
		{"2000", 200000, false},
		{" 6500.00 ", 650000, false},
		{"-12.50", -1250, false},
		{"", 0, true},
		{".", 0, true},
		{"12.", 0, true},
		{"12.345", 0, true},
		{"abc", 0, true},
		{"12.x", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseCents(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		require.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseCents_RoundTrip(t *testing.T) {
	for _, c := range []Cents{0, 5, 99, 100, 400000, 650000} {
		got, err := ParseCents(c.String())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
}
