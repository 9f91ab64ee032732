package policy

import (
	"testing"

	"github.com/trezcool/mazoezi/core/exercise"
	"github.com/trezcool/mazoezi/core/solution"
	"github.com/trezcool/mazoezi/core/user"
)

func TestCanModify(t *testing.T) {
	student := user.User{ID: 1, Role: user.RoleStudent}
	otherStudent := user.User{ID: 2, Role: user.RoleStudent}
	professor := user.User{ID: 3, Role: user.RoleProfessor}
	otherProfessor := user.User{ID: 4, Role: user.RoleProfessor}

	tests := []struct {
		name  string
		actor user.User
		obj   Owned
		want  bool
	}{
		{name: "student owns exercise", actor: student, obj: exercise.Exercise{CreatorID: student.ID}, want: true},
		{name: "student does not own exercise", actor: otherStudent, obj: exercise.Exercise{CreatorID: student.ID}, want: false},
		{name: "professor owns exercise", actor: professor, obj: exercise.Exercise{CreatorID: professor.ID}, want: true},
		{name: "professor does not own exercise", actor: otherProfessor, obj: exercise.Exercise{CreatorID: professor.ID}, want: true},
		{name: "student owns solution", actor: student, obj: solution.Solution{AuthorID: student.ID}, want: true},
		{name: "student does not own solution", actor: otherStudent, obj: solution.Solution{AuthorID: student.ID}, want: false},
		{name: "professor does not own solution", actor: professor, obj: solution.Solution{AuthorID: student.ID}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanModify(tt.actor, tt.obj); got != tt.want {
				t.Errorf("CanModify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanManageSubjects(t *testing.T) {
	if CanManageSubjects(user.User{ID: 1, Role: user.RoleStudent}) {
		t.Error("CanManageSubjects() = true for a student")
	}
	if !CanManageSubjects(user.User{ID: 1, Role: user.RoleProfessor}) {
		t.Error("CanManageSubjects() = false for a professor")
	}
}

func TestCanManageUsers(t *testing.T) {
	if CanManageUsers(user.User{ID: 1, Role: user.RoleStudent}) {
		t.Error("CanManageUsers() = true for a student")
	}
	if !CanManageUsers(user.User{ID: 1, Role: user.RoleProfessor}) {
		t.Error("CanManageUsers() = false for a professor")
	}
}

func TestCanDeleteUser(t *testing.T) {
	professor := user.User{ID: 1, Role: user.RoleProfessor}
	student := user.User{ID: 2, Role: user.RoleStudent}

	tests := []struct {
		name          string
		actor, target user.User
		want          bool
	}{
		{name: "professor deletes student", actor: professor, target: student, want: true},
		{name: "professor deletes self", actor: professor, target: professor, want: false},
		{name: "student deletes student", actor: student, target: user.User{ID: 3, Role: user.RoleStudent}, want: false},
		{name: "student deletes self", actor: student, target: student, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanDeleteUser(tt.actor, tt.target); got != tt.want {
				t.Errorf("CanDeleteUser() = %v, want %v", got, tt.want)
			}
		})
	}
}
