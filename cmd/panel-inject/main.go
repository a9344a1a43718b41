// Package main is the entry point for panel-inject.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/openclaw-cn/panel-inject/internal/cmd"
	oerrors "github.com/openclaw-cn/panel-inject/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Non-ExitError (usage errors from cobra): print it
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitGeneralError)
	}
}
