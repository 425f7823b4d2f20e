package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		want         string
		wantNegative bool
		wantOK       bool
	}{
		{
			name:   "space separated with comma decimal",
			token:  "1 234,56",
			want:   "1234.56",
			wantOK: true,
		},
		{
			name:   "plain dot decimal",
			token:  "1234.56",
			want:   "1234.56",
			wantOK: true,
		},
		{
			name:         "negative comma decimal",
			token:        "-1234,56",
			want:         "1234.56",
			wantNegative: true,
			wantOK:       true,
		},
		{
			name:   "explicit plus with space separator",
			token:  "+1 234.56",
			want:   "1234.56",
			wantOK: true,
		},
		{
			name:   "non-breaking space separator",
			token:  "7 890.10",
			want:   "7890.10",
			wantOK: true,
		},
		{
			name:   "integer amount",
			token:  "1500",
			want:   "1500",
			wantOK: true,
		},
		{
			name:   "no digits",
			token:  "RUB",
			wantOK: false,
		},
		{
			name:   "empty token",
			token:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, negative, ok := Amount(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.want, value.String())
			assert.Equal(t, tt.wantNegative, negative)
		})
	}
}

func TestDate(t *testing.T) {
	d, err := Date("01.03.2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = Date("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.March, d.Month())

	_, err = Date("not a date")
	assert.Error(t, err)

	_, err = Date("32.13.2024")
	assert.Error(t, err)
}
