package message_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/trezcool/mazoezi/core/message"
	"github.com/trezcool/mazoezi/core/user"
	"github.com/trezcool/mazoezi/storage/database/inmem"
	"github.com/trezcool/mazoezi/tests"
)

func TestService_Post(t *testing.T) {
	ctx := context.Background()
	db := inmemdb.NewDB()
	svc := message.NewService(inmemdb.NewMessageRepository(db), testutil.NewLogger())

	usrRepo := inmemdb.NewUserRepository(db)
	prof := testutil.CreateUser(t, usrRepo, "prof@test.cd", "S3cret!pwd", user.RoleProfessor, "Prof")
	student := testutil.CreateUser(t, usrRepo, "awe@test.cd", "S3cret!pwd", user.RoleStudent, "Awe")
	sub := testutil.CreateSubject(t, inmemdb.NewSubjectRepository(db), "Algorithmique")
	ex := testutil.CreateExercise(t, inmemdb.NewExerciseRepository(db), "Tri à bulles", "...", sub.ID, prof.ID)

	msg, err := svc.Post(ctx, message.NewMessage{
		Content:    " des indices? ",
		ExerciseID: ex.ID,
		AuthorID:   student.ID,
	})
	if err != nil {
		t.Fatalf("Post() failed: %v", err)
	}
	if msg.Content != "des indices?" {
		t.Errorf("Post() content = %q, want it trimmed", msg.Content)
	}
	if msg.SentAt.IsZero() {
		t.Error("Post() did not set the send time")
	}
	if msg.AuthorName != "Awe" {
		t.Errorf("Post() author name = %q, want %q", msg.AuthorName, "Awe")
	}

	if _, err = svc.Post(ctx, message.NewMessage{ExerciseID: ex.ID, AuthorID: student.ID}); err == nil {
		t.Error("Post() without content expected an error")
	}
}

func TestService_QueryByExercise(t *testing.T) {
	ctx := context.Background()
	db := inmemdb.NewDB()
	repo := inmemdb.NewMessageRepository(db)
	svc := message.NewService(repo, testutil.NewLogger())

	usrRepo := inmemdb.NewUserRepository(db)
	prof := testutil.CreateUser(t, usrRepo, "prof@test.cd", "S3cret!pwd", user.RoleProfessor, "Prof")
	student := testutil.CreateUser(t, usrRepo, "awe@test.cd", "S3cret!pwd", user.RoleStudent, "Awe")
	sub := testutil.CreateSubject(t, inmemdb.NewSubjectRepository(db), "Algorithmique")
	ex := testutil.CreateExercise(t, inmemdb.NewExerciseRepository(db), "Tri à bulles", "...", sub.ID, prof.ID)
	other := testutil.CreateExercise(t, inmemdb.NewExerciseRepository(db), "Dijkstra", "...", sub.ID, prof.ID)

	// insert out of order; the log must come back by send time
	now := time.Now().UTC()
	for _, m := range []message.Message{
		{Content: "troisième", SentAt: now.Add(2 * time.Minute), ExerciseID: ex.ID, AuthorID: prof.ID},
		{Content: "premier", SentAt: now, ExerciseID: ex.ID, AuthorID: student.ID},
		{Content: "deuxième", SentAt: now.Add(time.Minute), ExerciseID: ex.ID, AuthorID: student.ID},
		{Content: "ailleurs", SentAt: now, ExerciseID: other.ID, AuthorID: student.ID},
	} {
		if _, err := repo.CreateMessage(ctx, m); err != nil {
			t.Fatalf("CreateMessage() failed: %v", err)
		}
	}

	msgs, err := svc.QueryByExercise(ctx, ex.ID)
	if err != nil {
		t.Fatalf("QueryByExercise() failed: %v", err)
	}
	want := []string{"premier", "deuxième", "troisième"}
	if len(msgs) != len(want) {
		t.Fatalf("QueryByExercise() returned %d messages, want %d", len(msgs), len(want))
	}
	for i, content := range want {
		if msgs[i].Content != content {
			t.Errorf("QueryByExercise()[%d] = %q, want %q (ordered by send time)", i, msgs[i].Content, content)
		}
	}

	// author accounts may disappear; the log still renders
	if err = usrRepo.DeleteUsersByID(ctx, student.ID); err != nil {
		t.Fatalf("DeleteUsersByID() failed: %v", err)
	}
	msgs, err = svc.QueryByExercise(ctx, ex.ID)
	if err != nil {
		t.Fatalf("QueryByExercise() failed: %v", err)
	}
	wantName := fmt.Sprintf("User %d", student.ID)
	if msgs[0].AuthorName != wantName {
		t.Errorf("QueryByExercise() author name = %q, want %q", msgs[0].AuthorName, wantName)
	}
}

func TestMessage_Format(t *testing.T) {
	msg := message.Message{
		Content:    "des indices?",
		SentAt:     time.Date(2021, 3, 14, 15, 9, 26, 0, time.UTC),
		AuthorName: "Awe",
	}
	want := "[15:09:26] Awe: des indices?"
	if got := msg.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
