package main

import (
	"errors"
	"log"
	"os"

	"github.com/alexflint/go-arg"
)

// Args represents command-line arguments
type Args struct {
	File    string `arg:"--file" help:"Path to the commands file" default:"commands.json"`
	Init    bool   `arg:"--init" help:"Create the commands file with the default table if it does not exist"`
	List    bool   `arg:"--list" help:"Print the commands in the file and exit"`
	Backup  bool   `arg:"--backup" help:"Copy the file to <file>.bak before saving"`
	History string `arg:"--history" help:"Path to a readline history file"`
}

func (Args) Description() string {
	return "Interactively add chatbot commands to a commands.json file"
}

var args Args

func main() {
	arg.MustParse(&args)
	os.Exit(run(args))
}

func run(args Args) int {
	if args.File == "" {
		args.File = defaultCommandsFile
	}

	if args.Init {
		if _, err := initCommands(args.File); err != nil {
			log.Printf("Failed to initialise commands file: %v", err)
			return 1
		}
	}

	if args.List {
		table, err := loadCommands(args.File)
		if err != nil {
			log.Printf("%v", err)
			return 1
		}
		printCommands(os.Stdout, args.File, table)
		return 0
	}

	prompter, err := newReadlinePrompter(args.History)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}
	defer prompter.Close()

	return edit(args, prompter)
}

// edit runs one session over args.File and commits it. It returns the
// process exit code.
func edit(args Args, prompter Prompter) int {
	session, err := openSession(args.File, prompter)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}

	if err := session.Run(); err != nil {
		if errors.Is(err, errAborted) {
			log.Printf("Session aborted, nothing written to %s", args.File)
		} else {
			log.Printf("Session failed: %v", err)
		}
		return 1
	}

	if err := session.Commit(args.Backup); err != nil {
		log.Printf("%v", err)
		return 1
	}
	return 0
}
