package cli

import (
	"fmt"
	"strings"

	"github.com/vesta-budget/vesta/internal/model"
)

const descriptionWidth = 48

// RenderPreview renders the import preview as a table: one row per parsed
// transaction with its selection state, date, signed amount, category, and
// description. Duplicates are dimmed.
func RenderPreview(records []model.PreviewRecord) string {
	var b strings.Builder

	header := fmt.Sprintf("  %-3s %-10s %12s  %-22s %s",
		"#", "Date", "Amount", "Category", "Description")
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")

	for i, record := range records {
		txn := record.Transaction

		icon := SelectedIcon
		if record.Status != model.StatusSelected {
			icon = ExcludedIcon
		}

		category := txn.Category
		if txn.Subcategory != "" {
			category += " / " + txn.Subcategory
		}

		row := fmt.Sprintf("%s %-3d %-10s %12s  %-22s %s",
			icon,
			i+1,
			txn.Date.Format("02.01.2006"),
			txn.SignedAmount().StringFixed(2),
			truncate(category, 22),
			truncate(txn.Description, descriptionWidth))

		switch {
		case record.IsDuplicate:
			b.WriteString(SubtleStyle.Render(row + "  (duplicate)"))
		case record.Status == model.StatusExcluded:
			b.WriteString(SubtleStyle.Render(row))
		default:
			b.WriteString(row)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderImportSummary renders the selected/duplicate/total counts line shown
// under the preview table.
func RenderImportSummary(records []model.PreviewRecord) string {
	selected := 0
	duplicates := 0
	for i := range records {
		if records[i].Status == model.StatusSelected {
			selected++
		}
		if records[i].IsDuplicate {
			duplicates++
		}
	}

	summary := fmt.Sprintf("%d of %d selected", selected, len(records))
	if duplicates > 0 {
		summary += fmt.Sprintf(", %d duplicate(s) excluded", duplicates)
	}
	return SubtleStyle.Render(summary)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
