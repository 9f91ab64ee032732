package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/mazoezi/core"
	"github.com/trezcool/mazoezi/core/exercise"
	"github.com/trezcool/mazoezi/core/solution"
	"github.com/trezcool/mazoezi/core/subject"
	"github.com/trezcool/mazoezi/core/user"
	"github.com/trezcool/mazoezi/storage/database"
)

// PrepareDB connects to the test database, migrates it and wipes all rows.
// Tests relying on it are skipped when no database is reachable.
func PrepareDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conf := core.NewConfig()
	conf.Database.Name += "_test"

	db, err := database.OpenX(conf)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	if err = db.Ping(); err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = database.Migrate(db.DB); err != nil {
		t.Fatalf("PrepareDB() migration failed: %v", err)
	}
	db.MustExec("TRUNCATE TABLE message, solution, exercice, matiere, utilisateur RESTART IDENTITY CASCADE")
	return db
}

// NewLogger returns a logger that discards everything.
func NewLogger() core.Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(msg string, _ ...interface{}) {
	panic(msg)
}

func CreateUser(t *testing.T, repo user.Repository, email, pwd, role, name string) user.User {
	t.Helper()

	usr := user.User{
		Email:    email,
		Password: pwd,
		Role:     role,
	}
	if name != "" {
		usr.Name = null.StringFrom(name)
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateSubject(t *testing.T, repo subject.Repository, name string) subject.Subject {
	t.Helper()

	sub, err := repo.CreateSubject(context.Background(), name)
	if err != nil {
		t.Fatalf("CreateSubject() failed: %v", err)
	}
	return sub
}

func CreateExercise(
	t *testing.T,
	repo exercise.Repository,
	title, description string,
	subjectID, creatorID int,
	createdAt ...time.Time,
) exercise.Exercise {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	ex, err := repo.CreateExercise(context.Background(), exercise.Exercise{
		Title:       title,
		Description: description,
		CreatedAt:   tstamp,
		SubjectID:   subjectID,
		CreatorID:   creatorID,
	})
	if err != nil {
		t.Fatalf("CreateExercise() failed: %v", err)
	}
	return ex
}

func CreateSolution(
	t *testing.T,
	repo solution.Repository,
	content string,
	exerciseID, authorID int,
	createdAt ...time.Time,
) solution.Solution {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	sol, err := repo.CreateSolution(context.Background(), solution.Solution{
		Content:    content,
		CreatedAt:  tstamp,
		ExerciseID: exerciseID,
		AuthorID:   authorID,
	})
	if err != nil {
		t.Fatalf("CreateSolution() failed: %v", err)
	}
	return sol
}
