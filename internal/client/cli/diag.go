package cli

import (
	"context"
	"fmt"
)

// Diagnostics probes the backend and prints per-endpoint results.
func (a *App) Diagnostics(ctx context.Context) error {
	fmt.Println("Running network diagnostics...")

	for _, r := range a.checker.RunDiagnostics(ctx) {
		mark := "ok"
		if !r.OK {
			mark = "FAIL"
		}
		fmt.Printf("[%-4s] %-16s %s status=%d %dms", mark, r.Name, r.URL, r.Status, r.Duration.Milliseconds())
		if r.Err != "" {
			fmt.Printf(" error=%s", r.Err)
		}
		fmt.Println()
	}

	fmt.Printf("API base URL: %s\n", a.config.APIBaseURL)
	fmt.Printf("Environment:  %s\n", a.config.Environment)
	return nil
}
