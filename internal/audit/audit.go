// Package audit is the side-channel log of the bot: onboarding answers and
// one record per capability turn. Recording never fails the user's turn;
// storage errors are logged and dropped.
package audit

import (
	"time"

	"github.com/google/uuid"
)

const (
	KindIntroAnswer = "intro_answer"
	KindTurn        = "turn"
)

// Entry is one audit record.
type Entry struct {
	ID         uuid.UUID
	UserID     int64
	Kind       string
	Capability string
	Model      string
	Text       string
	Error      string
	CreatedAt  time.Time
}

func newEntry(userID int64, kind string) Entry {
	return Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
