package message

import (
	"context"
	"time"

	"github.com/trezcool/mazoezi/core"
)

type (
	Repository interface {
		// QueryMessagesByExercise returns the exercise's log ordered by send
		// time ascending, with author display names resolved ("User <id>"
		// when the author is gone).
		QueryMessagesByExercise(ctx context.Context, exerciseID int) ([]Message, error)
		CreateMessage(ctx context.Context, msg Message) (Message, error)
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (svc *Service) QueryByExercise(ctx context.Context, exerciseID int) ([]Message, error) {
	return svc.repo.QueryMessagesByExercise(ctx, exerciseID)
}

func (svc *Service) Post(ctx context.Context, nm NewMessage) (Message, error) {
	if err := nm.Validate(); err != nil {
		return Message{}, err
	}
	msg := Message{
		Content:    nm.Content,
		SentAt:     time.Now().UTC(),
		ExerciseID: nm.ExerciseID,
		AuthorID:   nm.AuthorID,
	}
	return svc.repo.CreateMessage(ctx, msg)
}
