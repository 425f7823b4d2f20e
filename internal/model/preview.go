package model

// PreviewStatus tracks whether an imported transaction will be committed.
type PreviewStatus string

// Preview status constants.
const (
	StatusPending  PreviewStatus = "pending"
	StatusSelected PreviewStatus = "selected"
	StatusExcluded PreviewStatus = "excluded"
)

// PreviewRecord decorates a parsed transaction during the confirm-before-commit
// flow. Duplicates are pinned to StatusExcluded and cannot be re-selected.
type PreviewRecord struct {
	Status      PreviewStatus
	Transaction Transaction
	IsDuplicate bool
}

// CanToggle reports whether the record's selection may be flipped by the user.
func (p *PreviewRecord) CanToggle() bool {
	return !p.IsDuplicate
}
