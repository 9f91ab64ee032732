package message

import (
	"fmt"
	"time"

	"github.com/trezcool/mazoezi/core"
)

// Message is one chat entry on an exercise. Messages form an append-only log;
// there is no edit or delete.
type Message struct {
	ID         int       `json:"id" db:"id"`
	Content    string    `json:"content" db:"contenu"`
	SentAt     time.Time `json:"sent_at" db:"date_envoi"` // UTC
	ExerciseID int       `json:"exercise_id" db:"exercice_id"`
	AuthorID   int       `json:"author_id" db:"auteur_id"`
	AuthorName string    `json:"author_name" db:"-"` // denormalized for rendering
}

// Format renders the message as a chat line.
func (m Message) Format() string {
	return fmt.Sprintf("[%s] %s: %s", m.SentAt.Format("15:04:05"), m.AuthorName, m.Content)
}

// NewMessage contains information needed to post a chat message.
type NewMessage struct {
	Content    string `json:"content" validate:"required"`
	ExerciseID int    `json:"exercise_id" validate:"required"`
	AuthorID   int    `json:"author_id" validate:"required"`
}

func (nm *NewMessage) Validate() error {
	nm.Content = core.CleanString(nm.Content)
	return core.Validate.Struct(nm)
}
