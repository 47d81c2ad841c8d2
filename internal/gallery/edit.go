package gallery

import (
	"fmt"

	"github.com/zvz09/2025-blog-public/internal/domain"
)

// Field names a share field that can be edited inline on a card.
type Field string

const (
	FieldName        Field = "name"
	FieldURL         Field = "url"
	FieldDescription Field = "description"
)

// EditSession tracks inline editing of one card.
//
// Every change is applied to the session's local copy immediately and also
// returned as a Command for the store; the session never waits for the store
// and never reconciles with it. Cancel drops local changes but does not
// retract commands already handed out.
type EditSession struct {
	original domain.Share
	local    domain.Share
	logo     *domain.LogoItem
	editing  bool
}

// NewEditSession starts a session for s. The session is not editing yet.
func NewEditSession(s domain.Share) *EditSession {
	return &EditSession{original: s, local: s}
}

// Begin switches the card into editing.
func (e *EditSession) Begin() { e.editing = true }

// Done leaves editing and keeps the local changes.
func (e *EditSession) Done() { e.editing = false }

// Cancel leaves editing, restores the original share and forgets any
// submitted logo.
func (e *EditSession) Cancel() {
	e.local = e.original
	e.logo = nil
	e.editing = false
}

// Editing reports whether the card is being edited.
func (e *EditSession) Editing() bool { return e.editing }

// CanEdit reports whether the card's fields accept input: the gallery must
// be in edit mode and this card must be editing.
func (e *EditSession) CanEdit(editMode bool) bool {
	return editMode && e.editing
}

// Local returns the share as currently displayed.
func (e *EditSession) Local() domain.Share { return e.local }

// Original returns the share the session started from.
func (e *EditSession) Original() domain.Share { return e.original }

// ChangeField sets field to value on the local copy and returns the update
// command carrying the merged share, the original, and the last submitted
// logo (if any).
func (e *EditSession) ChangeField(field Field, value string) (domain.Command, error) {
	updated := e.local
	switch field {
	case FieldName:
		updated.Name = value
	case FieldURL:
		updated.URL = value
	case FieldDescription:
		updated.Description = value
	default:
		return domain.Command{}, fmt.Errorf("%w: field %q is not editable", domain.ErrValidation, field)
	}
	e.local = updated
	return domain.UpdateCommand(updated, e.original, e.logo), nil
}

// SubmitLogo records logo, shows it on the local copy and returns the update
// command carrying it.
func (e *EditSession) SubmitLogo(logo domain.LogoItem) domain.Command {
	e.logo = &logo
	e.local.Logo = logo.DisplayURL()
	return domain.UpdateCommand(e.local, e.original, e.logo)
}

// Delete returns the command that removes the card's share.
func (e *EditSession) Delete() domain.Command {
	return domain.DeleteCommand(e.original)
}
