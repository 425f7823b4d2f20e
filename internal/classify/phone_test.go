package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{
			name:        "full number after preposition",
			description: "перевод на +79991234567",
			want:        "+79991234567",
		},
		{
			name:        "masked number keeps mask marker",
			description: "на +7999+++1234",
			want:        "+7***1234",
		},
		{
			name:        "full number without preposition",
			description: "СБП +79031112233 Иван И.",
			want:        "+79031112233",
		},
		{
			name:        "incoming transfer",
			description: "поступление от +79160000001",
			want:        "+79160000001",
		},
		{
			name:        "no phone",
			description: "оплата покупки в магазине",
			want:        "",
		},
		{
			name:        "empty description",
			description: "",
			want:        "",
		},
		{
			name:        "country code alone is not a phone",
			description: "перевод от +7",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(tt.description))
		})
	}
}
