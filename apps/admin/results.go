package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"
)

func (cli *commandLine) printResults(student string) error {
	subs, err := cli.client.results(context.Background(), student)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		fmt.Fprintln(cli.out, "no results")
		return nil
	}

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STUDENT\tSCORE\tSUBMITTED")
	for _, s := range subs {
		fmt.Fprintf(w, "%s\t%d\t%s\n", s.Student, s.Score, s.SubmittedAt.Format(time.RFC3339))
	}
	return w.Flush()
}
