package inmemdb

import (
	"context"
	"sort"

	"github.com/trezcool/mazoezi/core/message"
)

type messageRepository struct {
	db *DB
}

var _ message.Repository = (*messageRepository)(nil) // interface compliance check

func NewMessageRepository(db *DB) *messageRepository {
	return &messageRepository{db: db}
}

func (repo *messageRepository) QueryMessagesByExercise(_ context.Context, exerciseID int) ([]message.Message, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	msgs := make([]message.Message, 0)
	for _, msg := range repo.db.messages {
		if msg.ExerciseID == exerciseID {
			m := *msg
			m.AuthorName = repo.db.displayName(m.AuthorID)
			msgs = append(msgs, m)
		}
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].SentAt.Before(msgs[j].SentAt) })
	return msgs, nil
}

func (repo *messageRepository) CreateMessage(_ context.Context, msg message.Message) (message.Message, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	msg.ID = repo.db.nextID()
	repo.db.messages[msg.ID] = &msg
	m := msg
	m.AuthorName = repo.db.displayName(m.AuthorID)
	return m, nil
}
