package solution_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/trezcool/mazoezi/core/solution"
	"github.com/trezcool/mazoezi/core/user"
	"github.com/trezcool/mazoezi/storage/database/inmem"
	"github.com/trezcool/mazoezi/tests"
)

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	db := inmemdb.NewDB()
	svc := solution.NewService(inmemdb.NewSolutionRepository(db), testutil.NewLogger())

	usrRepo := inmemdb.NewUserRepository(db)
	prof := testutil.CreateUser(t, usrRepo, "prof@test.cd", "S3cret!pwd", user.RoleProfessor, "Prof")
	student := testutil.CreateUser(t, usrRepo, "awe@test.cd", "S3cret!pwd", user.RoleStudent, "Awe")
	sub := testutil.CreateSubject(t, inmemdb.NewSubjectRepository(db), "Algorithmique")
	ex := testutil.CreateExercise(t, inmemdb.NewExerciseRepository(db), "Tri à bulles", "...", sub.ID, prof.ID)

	sol, err := svc.Create(ctx, solution.NewSolution{
		Content:    " ma solution ",
		ExerciseID: ex.ID,
		AuthorID:   student.ID,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if sol.Content != "ma solution" {
		t.Errorf("Create() content = %q, want it trimmed", sol.Content)
	}
	if sol.CreatedAt.IsZero() {
		t.Error("Create() did not set the creation date")
	}
	if sol.AuthorName != "Awe" {
		t.Errorf("Create() author name = %q, want %q", sol.AuthorName, "Awe")
	}

	if _, err = svc.Create(ctx, solution.NewSolution{ExerciseID: ex.ID, AuthorID: student.ID}); err == nil {
		t.Error("Create() without content expected an error")
	}
}

func TestService_Query(t *testing.T) {
	ctx := context.Background()
	db := inmemdb.NewDB()
	repo := inmemdb.NewSolutionRepository(db)
	svc := solution.NewService(repo, testutil.NewLogger())

	usrRepo := inmemdb.NewUserRepository(db)
	exRepo := inmemdb.NewExerciseRepository(db)
	prof := testutil.CreateUser(t, usrRepo, "prof@test.cd", "S3cret!pwd", user.RoleProfessor, "Prof")
	student := testutil.CreateUser(t, usrRepo, "awe@test.cd", "S3cret!pwd", user.RoleStudent, "Awe")
	other := testutil.CreateUser(t, usrRepo, "jean@test.cd", "S3cret!pwd", user.RoleStudent, "Jean")
	sub := testutil.CreateSubject(t, inmemdb.NewSubjectRepository(db), "Algorithmique")

	profEx := testutil.CreateExercise(t, exRepo, "Tri à bulles", "...", sub.ID, prof.ID)
	studentEx := testutil.CreateExercise(t, exRepo, "Dijkstra", "...", sub.ID, student.ID)

	testutil.CreateSolution(t, repo, "sol 1", profEx.ID, student.ID)
	testutil.CreateSolution(t, repo, "sol 2", profEx.ID, other.ID)
	testutil.CreateSolution(t, repo, "sol 3", studentEx.ID, other.ID)

	byEx, err := svc.QueryByExercise(ctx, profEx.ID)
	if err != nil {
		t.Fatalf("QueryByExercise() failed: %v", err)
	}
	if len(byEx) != 2 {
		t.Errorf("QueryByExercise() returned %d solutions, want 2", len(byEx))
	}

	// filters on the owning exercise's creator, not the solution's author
	byCreator, err := svc.QueryByExerciseCreator(ctx, prof.ID)
	if err != nil {
		t.Fatalf("QueryByExerciseCreator() failed: %v", err)
	}
	if len(byCreator) != 2 {
		t.Errorf("QueryByExerciseCreator() returned %d solutions, want 2", len(byCreator))
	}
	for _, sol := range byCreator {
		if sol.ExerciseID != profEx.ID {
			t.Errorf("QueryByExerciseCreator() returned a solution of exercise %d, want %d", sol.ExerciseID, profEx.ID)
		}
	}

	byAuthor, err := svc.QueryByAuthor(ctx, other.ID)
	if err != nil {
		t.Fatalf("QueryByAuthor() failed: %v", err)
	}
	if len(byAuthor) != 2 {
		t.Errorf("QueryByAuthor() returned %d solutions, want 2", len(byAuthor))
	}
}

func TestService_Query_goneAuthor(t *testing.T) {
	ctx := context.Background()
	db := inmemdb.NewDB()
	repo := inmemdb.NewSolutionRepository(db)
	svc := solution.NewService(repo, testutil.NewLogger())

	usrRepo := inmemdb.NewUserRepository(db)
	prof := testutil.CreateUser(t, usrRepo, "prof@test.cd", "S3cret!pwd", user.RoleProfessor, "Prof")
	student := testutil.CreateUser(t, usrRepo, "awe@test.cd", "S3cret!pwd", user.RoleStudent, "Awe")
	sub := testutil.CreateSubject(t, inmemdb.NewSubjectRepository(db), "Algorithmique")
	ex := testutil.CreateExercise(t, inmemdb.NewExerciseRepository(db), "Tri à bulles", "...", sub.ID, prof.ID)
	sol := testutil.CreateSolution(t, repo, "ma solution", ex.ID, student.ID)

	// the author's account is deleted; the solution stays listed under a
	// degraded label instead of failing the whole listing
	if err := usrRepo.DeleteUsersByID(ctx, student.ID); err != nil {
		t.Fatalf("DeleteUsersByID() failed: %v", err)
	}

	sols, err := svc.QueryByExercise(ctx, ex.ID)
	if err != nil {
		t.Fatalf("QueryByExercise() failed: %v", err)
	}
	if len(sols) != 1 {
		t.Fatalf("QueryByExercise() returned %d solutions, want 1", len(sols))
	}
	want := fmt.Sprintf("User %d", student.ID)
	if sols[0].AuthorName != want {
		t.Errorf("QueryByExercise() author name = %q, want %q", sols[0].AuthorName, want)
	}

	got, err := svc.GetByID(ctx, sol.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.AuthorName != want {
		t.Errorf("GetByID() author name = %q, want %q", got.AuthorName, want)
	}
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	db := inmemdb.NewDB()
	repo := inmemdb.NewSolutionRepository(db)
	svc := solution.NewService(repo, testutil.NewLogger())

	usrRepo := inmemdb.NewUserRepository(db)
	prof := testutil.CreateUser(t, usrRepo, "prof@test.cd", "S3cret!pwd", user.RoleProfessor, "Prof")
	student := testutil.CreateUser(t, usrRepo, "awe@test.cd", "S3cret!pwd", user.RoleStudent, "Awe")
	sub := testutil.CreateSubject(t, inmemdb.NewSubjectRepository(db), "Algorithmique")
	ex := testutil.CreateExercise(t, inmemdb.NewExerciseRepository(db), "Tri à bulles", "...", sub.ID, prof.ID)
	sol := testutil.CreateSolution(t, repo, "ma solution", ex.ID, student.ID, time.Now().Add(-time.Hour))

	if err := svc.Update(ctx, sol.ID, solution.UpdateSolution{Content: "ma solution corrigée"}); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	got, err := svc.GetByID(ctx, sol.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.Content != "ma solution corrigée" {
		t.Errorf("Update() content = %q, want %q", got.Content, "ma solution corrigée")
	}
	// the creation date moves forward on every edit
	if !got.CreatedAt.After(sol.CreatedAt) {
		t.Errorf("Update() did not refresh the creation date (%v -> %v)", sol.CreatedAt, got.CreatedAt)
	}

	if err = svc.Update(ctx, 999, solution.UpdateSolution{Content: "lol"}); err != solution.ErrNotFound {
		t.Errorf("Update() unknown solution error = %v, want %v", err, solution.ErrNotFound)
	}
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	db := inmemdb.NewDB()
	repo := inmemdb.NewSolutionRepository(db)
	svc := solution.NewService(repo, testutil.NewLogger())

	usrRepo := inmemdb.NewUserRepository(db)
	prof := testutil.CreateUser(t, usrRepo, "prof@test.cd", "S3cret!pwd", user.RoleProfessor, "Prof")
	student := testutil.CreateUser(t, usrRepo, "awe@test.cd", "S3cret!pwd", user.RoleStudent, "Awe")
	sub := testutil.CreateSubject(t, inmemdb.NewSubjectRepository(db), "Algorithmique")
	ex := testutil.CreateExercise(t, inmemdb.NewExerciseRepository(db), "Tri à bulles", "...", sub.ID, prof.ID)
	sol := testutil.CreateSolution(t, repo, "ma solution", ex.ID, student.ID)

	if err := svc.Delete(ctx, sol.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, sol.ID); err != solution.ErrNotFound {
		t.Errorf("GetByID() after delete error = %v, want %v", err, solution.ErrNotFound)
	}
	if err := svc.Delete(ctx, sol.ID); err != solution.ErrNotFound {
		t.Errorf("Delete() twice error = %v, want %v", err, solution.ErrNotFound)
	}
}
