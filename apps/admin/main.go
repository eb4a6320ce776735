package main

import (
	"log"
	"os"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds)

	server := os.Getenv("DARASA_SERVER")
	if server == "" {
		server = "http://localhost:3000"
	}

	cli := commandLine{
		client: newAPIClient(server),
		out:    os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("error: %s\n", err)
		}
		os.Exit(1)
	}
}
