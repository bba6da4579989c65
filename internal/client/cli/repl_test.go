package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls []string
	args  [][]string
}

func (f *fakeExec) mark(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }

func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.mark("login", nil)
}
func (f *fakeExec) Signup(ctx context.Context) error         { return f.mark("signup", nil) }
func (f *fakeExec) ForgotPassword(ctx context.Context) error { return f.mark("forgot", nil) }
func (f *fakeExec) ResetPassword(ctx context.Context) error  { return f.mark("reset", nil) }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.mark("logout", nil)
}
func (f *fakeExec) Whoami(ctx context.Context) error { return f.mark("whoami", nil) }

func (f *fakeExec) Novels(ctx context.Context, args []string) error { return f.mark("novels", args) }
func (f *fakeExec) Novel(ctx context.Context, args []string) error  { return f.mark("novel", args) }
func (f *fakeExec) Chapters(ctx context.Context, args []string) error {
	return f.mark("chapters", args)
}
func (f *fakeExec) Read(ctx context.Context, args []string) error { return f.mark("read", args) }
func (f *fakeExec) Next(ctx context.Context) error                { return f.mark("next", nil) }
func (f *fakeExec) Prev(ctx context.Context) error                { return f.mark("prev", nil) }

func (f *fakeExec) Dashboard(ctx context.Context) error { return f.mark("dashboard", nil) }
func (f *fakeExec) AddNovel(ctx context.Context) error  { return f.mark("addnovel", nil) }
func (f *fakeExec) EditNovel(ctx context.Context, args []string) error {
	return f.mark("editnovel", args)
}
func (f *fakeExec) DelNovel(ctx context.Context, args []string) error {
	return f.mark("delnovel", args)
}
func (f *fakeExec) AddChapter(ctx context.Context, args []string) error {
	return f.mark("addchapter", args)
}
func (f *fakeExec) EditChapter(ctx context.Context, args []string) error {
	return f.mark("editchapter", args)
}
func (f *fakeExec) DelChapter(ctx context.Context, args []string) error {
	return f.mark("delchapter", args)
}

func (f *fakeExec) Diagnostics(ctx context.Context) error { return f.mark("diag", nil) }

func TestRunREPL_BrowseAndSessionCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"novels sword art",
		"novel n1",
		"read c1",
		"next",
		"prev",
		"login",
		"whoami",
		"diag",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"novels", "novel", "read", "next", "prev", "login", "whoami", "diag"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("calls mismatch at %d: got %v, want %v", i, exec.calls, want)
		}
	}

	// arguments after the command name are passed through untouched
	if got := exec.args[0]; len(got) != 2 || got[0] != "sword" || got[1] != "art" {
		t.Fatalf("novels args: %v", got)
	}
	if got := exec.args[1]; len(got) != 1 || got[0] != "n1" {
		t.Fatalf("novel args: %v", got)
	}
}

func TestRunREPL_AdminCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"dashboard",
		"addnovel",
		"editnovel n1",
		"delnovel n1",
		"addchapter n1",
		"editchapter c1",
		"delchapter c1",
		"quit",
	}, "\n"))

	exec := &fakeExec{loggedIn: true, admin: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	want := []string{"dashboard", "addnovel", "editnovel", "delnovel", "addchapter", "editchapter", "delchapter"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
}

func TestRunREPL_EmptyLinesAndEOF(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n\n   \n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
