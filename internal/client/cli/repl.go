package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Sort(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the dashboard.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens. Unknown commands
// are reported back to the user. The loop exits on EOF, when ctx is done, or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             show available commands
//	  - login            authenticate
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - help             show available commands
//	  - list | l         show the accounts matching the current criteria
//	  - search <text>    set the search text (no text clears it)
//	  - filter <f>       all, None, Target or Blacklist
//	  - sort <key>       matchScore, name or industry
//	  - status <id> <status> [<id> <status> ...] change statuses
//	  - show <id>        show a single account
//	  - logout           log out and reset the demo data
//	  - exit | quit      leave the program
//
// Errors returned by command handlers are reported and otherwise ignored,
// which keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("salesmatch %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !a.isLoggedIn() && needsSession(cmd) {
			printlnFn("Please log in first")
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search, filter, sort, status, show, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "search":
			cmdErr = a.Search(ctx, args)

		case "filter":
			cmdErr = a.Filter(ctx, args)

		case "sort":
			cmdErr = a.Sort(ctx, args)

		case "status":
			cmdErr = a.Status(ctx, args)

		case "show":
			cmdErr = a.Show(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if errors.Is(cmdErr, errUsage) {
			printlnFn(cmdErr.Error())
		}
	}
}

func needsSession(cmd string) bool {
	switch cmd {
	case "l", "list", "search", "filter", "sort", "status", "show", "logout":
		return true
	}
	return false
}
