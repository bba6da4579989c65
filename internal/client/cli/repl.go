package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Novels(ctx context.Context, args []string) error
	Novel(ctx context.Context, args []string) error
	Chapters(ctx context.Context, args []string) error
	Read(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error

	Dashboard(ctx context.Context) error
	AddNovel(ctx context.Context) error
	EditNovel(ctx context.Context, args []string) error
	DelNovel(ctx context.Context, args []string) error
	AddChapter(ctx context.Context, args []string) error
	EditChapter(ctx context.Context, args []string) error
	DelChapter(ctx context.Context, args []string) error

	Diagnostics(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the novel reader CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Browsing commands are always available; session commands switch with the
// login state and admin commands additionally require an elevated role.
//
// Any errors returned by command handlers are ignored here; handlers should
// print their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("nr%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Browse: (n)ovels [search], novel <id>, chapters <novelId>, read <chapterId>, next, prev, diag")
			if a.isLoggedIn() {
				printlnFn("Session: whoami, logout, exit")
			} else {
				printlnFn("Session: login, signup, forgot, reset, exit")
			}
			if a.isAdmin() {
				printlnFn("Admin: dashboard, addnovel, editnovel <id>, delnovel <id>, addchapter <novelId>, editchapter <id>, delchapter <id>")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "n", "novels":
			_ = a.Novels(ctx, args)

		case "novel":
			_ = a.Novel(ctx, args)

		case "chapters":
			_ = a.Chapters(ctx, args)

		case "read":
			_ = a.Read(ctx, args)

		case "next":
			_ = a.Next(ctx)

		case "prev":
			_ = a.Prev(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "addnovel":
			_ = a.AddNovel(ctx)

		case "editnovel":
			_ = a.EditNovel(ctx, args)

		case "delnovel":
			_ = a.DelNovel(ctx, args)

		case "addchapter":
			_ = a.AddChapter(ctx, args)

		case "editchapter":
			_ = a.EditChapter(ctx, args)

		case "delchapter":
			_ = a.DelChapter(ctx, args)

		case "diag":
			_ = a.Diagnostics(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
