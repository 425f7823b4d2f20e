package classify

import (
	"strings"

	"github.com/vesta-budget/vesta/internal/model"
)

// Keyword heuristics for transaction direction. Salary markers win
// unconditionally; transfer markers defer to the amount sign.
var (
	incomeKeywords = []string{
		"заработная плата", "зарплата", "оклад", "salary", "зп", "выплата заработной платы",
		"премия", "premium", "бонус", "отпускных", "внесение средств", "от +7",
	}

	transferKeywords = []string{
		"перевод по сбп", "через систему быстрых платежей", "внутрибанковский перевод",
		"перевод между счетами", "со счёта", "на счёт",
	}
)

// ResolveType decides income vs expense from the description, the bank's
// coarse category hint, and the amount sign. It must run while the sign is
// still known; the normalizer discards it afterwards.
func ResolveType(description, hint string, negative bool) model.TransactionType {
	descLower := strings.ToLower(description)

	for _, keyword := range incomeKeywords {
		if strings.Contains(descLower, keyword) {
			return model.TypeIncome
		}
	}

	bySign := model.TypeIncome
	if negative {
		bySign = model.TypeExpense
	}

	for _, keyword := range transferKeywords {
		if strings.Contains(descLower, keyword) {
			return bySign
		}
	}

	if strings.Contains(strings.ToLower(hint), "финансовые операции") {
		// SBP QR payments are charges even when the export leaves them unsigned.
		if strings.Contains(descLower, "qr по сбп") || strings.Contains(descLower, "qr коду") {
			return model.TypeExpense
		}
		return bySign
	}

	return bySign
}
