package dataprocessing

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gymcli/pkg/contracts/domain"
)

// Summarizer reports athletes whose records are missing apparatus scores.
// The team report interleaves rotations, so partial athletes are expected
// there; the summary goes to stdout for the operator and is not persisted.
type Summarizer struct {
	logger *slog.Logger
	out    io.Writer
}

// NewSummarizer creates a summarizer writing to out (stdout when nil).
func NewSummarizer(logger *slog.Logger, out io.Writer) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Summarizer{logger: logger, out: out}
}

// ReportPartials lists every record with fewer than four resolved
// apparatus and returns how many there were. Nothing is printed when all
// records are complete.
func (s *Summarizer) ReportPartials(records []domain.Record) int {
	var partials []domain.Record
	for _, rec := range records {
		if rec.ResolvedApparatusCount() < len(rec.Apparatus) {
			partials = append(partials, rec)
		}
	}
	if len(partials) == 0 {
		return 0
	}

	fmt.Fprintln(s.out, "Athletes with <4 apparatus parsed (expected in team format):")
	fmt.Fprintf(s.out, "%6s  %-30s  %s\n", "Bib", "Name", "NOC")
	for _, rec := range partials {
		fmt.Fprintf(s.out, "%6d  %-30s  %s\n", rec.Bib, rec.Name, rec.NOC)
	}

	s.logger.Info("partial records reported",
		slog.Int("partial", len(partials)),
		slog.Int("total", len(records)))
	return len(partials)
}
