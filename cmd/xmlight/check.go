package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-xmlight"
)

var checkCmd = &cobra.Command{
	Use:   "check <file> [file...]",
	Short: "Check documents and report diagnostics",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

var (
	pathColor = color.New(color.Bold).SprintFunc()
	diagColor = color.New(color.FgRed).SprintFunc()
	okColor   = color.New(color.FgGreen).SprintFunc()
)

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	failed := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", pathColor(path), err)
			failed++
			continue
		}
		if _, err := xmlight.Parse(data); err != nil {
			failed++
			var perr *xmlight.ParseError
			if errors.As(err, &perr) {
				fmt.Fprintf(os.Stderr, "%s: %s\n", pathColor(path), diagColor(perr.Error()))
			} else {
				fmt.Fprintf(os.Stderr, "%s: %v\n", pathColor(path), err)
			}
			continue
		}
		fmt.Fprintf(os.Stdout, "%s: %s\n", path, okColor("ok"))
	}
	if failed > 0 {
		return fmt.Errorf("check: %d of %d documents failed", failed, len(args))
	}
	return nil
}
