package cli

import (
	"fmt"

	"github.com/thentamil/novelreader/internal/client/api"
)

// printError renders an error for the interactive user. API errors are shown
// with their status and per-field details; anything else is printed verbatim.
func printError(err error) {
	apiErr, ok := api.AsError(err)
	if !ok {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	fmt.Printf("Error (%d): %s\n", apiErr.Status, apiErr.Message)
	for _, fe := range apiErr.Errors {
		fmt.Printf("  - %s: %s\n", fe.Field, fe.Message)
	}
}

// optionalText reads a line and maps an empty answer to nil, for the partial
// update prompts where "leave unchanged" is a valid choice.
func optionalText(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
