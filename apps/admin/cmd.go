package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	client *apiClient
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  adduser -id ID -name NAME -role ROLE - sign up a user (the password is prompted next)")
	fmt.Fprintln(cli.out, "  results [-student ID]                - print exam results")
}

// run expects the program name in args[0].
func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ContinueOnError)
	addUserCmd.SetOutput(cli.out)
	addUserID := addUserCmd.String("id", "", "The user's login ID.")
	addUserName := addUserCmd.String("name", "", "The user's display name.")
	addUserRole := addUserCmd.String("role", "", "student, teacher or parent.")

	resultsCmd := flag.NewFlagSet("results", flag.ContinueOnError)
	resultsCmd.SetOutput(cli.out)
	resultsStudent := resultsCmd.String("student", "", "Only print this student's results.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *addUserID == "" || *addUserName == "" || *addUserRole == "" {
			addUserCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserID, *addUserName, *addUserRole, string(pwd))
	case "results":
		if err := resultsCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.printResults(*resultsStudent)
	default:
		cli.printUsage()
		return errHelp
	}
}
