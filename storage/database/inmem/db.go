// Package inmemdb is a mutex+map backend mirroring the sqlx repositories'
// semantics. It backs the service tests; it is not meant for production use.
package inmemdb

import (
	"fmt"
	"sync"

	"github.com/trezcool/mazoezi/core/exercise"
	"github.com/trezcool/mazoezi/core/message"
	"github.com/trezcool/mazoezi/core/solution"
	"github.com/trezcool/mazoezi/core/subject"
	"github.com/trezcool/mazoezi/core/user"
)

type DB struct {
	mu  sync.RWMutex
	seq int

	users     map[int]*user.User
	subjects  map[int]*subject.Subject
	exercises map[int]*exercise.Exercise
	solutions map[int]*solution.Solution
	messages  map[int]*message.Message
}

func NewDB() *DB {
	return &DB{
		users:     make(map[int]*user.User),
		subjects:  make(map[int]*subject.Subject),
		exercises: make(map[int]*exercise.Exercise),
		solutions: make(map[int]*solution.Solution),
		messages:  make(map[int]*message.Message),
	}
}

// nextID must be called with db.mu held.
func (db *DB) nextID() int {
	db.seq++
	return db.seq
}

// displayName must be called with db.mu held (read or write).
func (db *DB) displayName(userID int) string {
	if usr, ok := db.users[userID]; ok && usr.Name.Valid && usr.Name.String != "" {
		return usr.Name.String
	}
	return fmt.Sprintf("User %d", userID)
}
