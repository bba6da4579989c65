package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	s := a.userName
	if a.isAdmin() {
		s = s + " " + string(a.role)
	}
	return fmt.Sprintf(" (%s)", s)
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to the novel reader CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
