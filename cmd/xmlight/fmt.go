package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-xmlight"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [file...]",
	Short: "Re-render documents to stdout",
	Long:  "Parses each file (or stdin when no file is given) and writes it back in the selected rendering.",
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("compact", false, "render with no added whitespace")
	fmtCmd.Flags().Bool("human", false, "render tag-stripped, human-readable output")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	compact, err := cmd.Flags().GetBool("compact")
	if err != nil {
		return err
	}
	human, err := cmd.Flags().GetBool("human")
	if err != nil {
		return err
	}
	if compact && human {
		return fmt.Errorf("fmt: --compact cannot be used with --human")
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if len(args) == 0 {
		return formatReader(out, "stdin", os.Stdin, compact, human)
	}
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("fmt: %w", err)
		}
		err = formatReader(out, path, f, compact, human)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func formatReader(out *bufio.Writer, name string, r io.Reader, compact, human bool) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("fmt: %s: %w", name, err)
	}
	doc, err := xmlight.Parse(data)
	if err != nil {
		return fmt.Errorf("fmt: %s: %w", name, err)
	}
	switch {
	case compact:
		if err := xmlight.Write(out, doc); err != nil {
			return err
		}
		return out.WriteByte('\n')
	case human:
		return xmlight.WriteFmt(out, doc, xmlight.FormatNoTag)
	default:
		return xmlight.WriteFmt(out, doc, xmlight.FormatXML)
	}
}
