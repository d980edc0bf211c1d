package presentation

import (
	"fmt"
	"io"

	"photosort/internal/domain"
)

type Printer struct {
	Writer io.Writer
}

func (p Printer) PrintSummary(summary domain.Summary, dryRun bool) {
	fmt.Fprintln(p.Writer)
	if dryRun {
		fmt.Fprintf(p.Writer, "Would move %s.\n", files(summary.Planned))
	} else {
		fmt.Fprintf(p.Writer, "Moved %s.\n", files(summary.Moved))
	}
	fmt.Fprintf(p.Writer, "Skipped %s without a capture time.\n", files(summary.Skipped))
	fmt.Fprintf(p.Writer, "Processed %s in total.\n", files(summary.Processed))
	if dryRun {
		fmt.Fprintln(p.Writer, "Dry run: no files were moved.")
	}
}

func files(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
