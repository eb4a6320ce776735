package main

import (
	"context"
	"fmt"

	"github.com/trezcool/darasa/core/user"
)

func (cli *commandLine) addUser(id, name, role, pwd string) error {
	nu := user.NewUser{
		ID:       id,
		Name:     name,
		Password: pwd,
		Role:     role,
	}
	if err := cli.client.signup(context.Background(), nu); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "user %q signed up as %s\n", nu.ID, nu.Role)
	return nil
}
