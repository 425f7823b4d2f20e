package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vesta-budget/vesta/internal/model"
)

func TestResolveType(t *testing.T) {
	tests := []struct {
		name        string
		description string
		hint        string
		negative    bool
		want        model.TransactionType
	}{
		{
			name:        "salary keyword beats negative sign",
			description: "Выплата заработной платы за март",
			negative:    true,
			want:        model.TypeIncome,
		},
		{
			name:        "bonus keyword",
			description: "Премия по итогам квартала",
			want:        model.TypeIncome,
		},
		{
			name:        "transfer follows positive sign",
			description: "Перевод по СБП от Ивана",
			negative:    false,
			want:        model.TypeIncome,
		},
		{
			name:        "transfer follows negative sign",
			description: "Внутрибанковский перевод",
			negative:    true,
			want:        model.TypeExpense,
		},
		{
			name:        "qr payment in financial operations is expense",
			description: "Оплата QR по СБП",
			hint:        "Финансовые операции",
			negative:    false,
			want:        model.TypeExpense,
		},
		{
			name:        "other financial operations follow sign",
			description: "Комиссия за обслуживание",
			hint:        "Финансовые операции",
			negative:    true,
			want:        model.TypeExpense,
		},
		{
			name:        "default positive is income",
			description: "Возврат средств",
			negative:    false,
			want:        model.TypeIncome,
		},
		{
			name:        "default negative is expense",
			description: "RU/Moscow/PYATEROCHKA MCC: 5411",
			negative:    true,
			want:        model.TypeExpense,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveType(tt.description, tt.hint, tt.negative)
			assert.Equal(t, tt.want, got)
		})
	}
}
