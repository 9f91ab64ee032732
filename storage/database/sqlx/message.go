package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/mazoezi/core/message"
)

type messageRepository struct {
	db *sqlx.DB
}

var _ message.Repository = (*messageRepository)(nil) // interface compliance check

func NewMessageRepository(db *sqlx.DB) *messageRepository {
	return &messageRepository{db: db}
}

func (repo messageRepository) QueryMessagesByExercise(ctx context.Context, exerciseID int) ([]message.Message, error) {
	msgs := make([]message.Message, 0)
	err := repo.db.SelectContext(ctx, &msgs,
		`SELECT id, contenu, date_envoi, exercice_id, auteur_id
		 FROM message WHERE exercice_id = $1 ORDER BY date_envoi`, exerciseID)
	if err != nil {
		return nil, errors.Wrap(err, "querying messages")
	}
	for i := range msgs {
		msgs[i].AuthorName = authorDisplayName(ctx, repo.db, msgs[i].AuthorID)
	}
	return msgs, nil
}

func (repo messageRepository) CreateMessage(ctx context.Context, msg message.Message) (message.Message, error) {
	err := repo.db.QueryRowxContext(ctx,
		`INSERT INTO message (contenu, date_envoi, exercice_id, auteur_id)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		msg.Content, msg.SentAt, msg.ExerciseID, msg.AuthorID,
	).Scan(&msg.ID)
	if err != nil {
		return message.Message{}, errors.Wrap(err, "inserting message")
	}
	msg.AuthorName = authorDisplayName(ctx, repo.db, msg.AuthorID)
	return msg, nil
}
