package main

import (
	"context"

	"github.com/trezcool/mazoezi/core/user"
)

// addUser updates or creates a user.User
func (cli *commandLine) addUser(email, name, pwd string, isProfessor bool) error {
	role := user.RoleStudent
	if isProfessor {
		role = user.RoleProfessor
	}
	_, err := cli.usrSvc.UpdateOrCreate(context.Background(), email, name, role, pwd)
	return err
}
