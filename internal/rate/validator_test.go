package rate

import (
	"errors"
	"testing"

	"p2prates/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "integer", raw: "100", want: "100"},
		{name: "dot decimal", raw: "14.25", want: "14.25"},
		{name: "comma decimal", raw: " 14,25 ", want: "14.25"},
		{name: "blank is zero", raw: "  ", want: "0"},
		{name: "zero", raw: "0", want: "0"},
		{name: "negative", raw: "-5", wantErr: true},
		{name: "letters", raw: "12abc", wantErr: true},
		{name: "two separators", raw: "1.2.3", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, domain.ErrInvalidAmount))
				return
			}
			require.NoError(t, err)
			require.True(t, got.Equal(dec(tc.want)), "got %s", got)
		})
	}
}

func TestValidateAmount(t *testing.T) {
	require.NoError(t, ValidateAmount(dec("0")))
	require.NoError(t, ValidateAmount(dec("0.01")))
	require.ErrorIs(t, ValidateAmount(dec("-0.01")), domain.ErrInvalidAmount)
}
