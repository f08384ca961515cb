package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gymcli/internal/app"
	"gymcli/internal/config"
	"gymcli/internal/dataprocessing"
	"gymcli/internal/exporter"
	"gymcli/internal/infrastructure"
	"gymcli/internal/pdftables"
)

func main() {
	inPath := flag.String("in", "", "input PDF (defaults to events.pdf in data/downloads relative to executable)")
	outPath := flag.String("out", "", "output CSV (defaults to events.csv in data/reports relative to executable)")
	xlsxPath := flag.String("xlsx", "", "optional xlsx output path")
	flag.Parse()

	a, err := app.New("events")
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}
	ctx := infrastructure.EnsureTraceID(context.Background())

	if err := run(ctx, a, *inPath, *outPath, *xlsxPath); err != nil {
		a.Logger.ErrorContext(ctx, "Event finals extraction failed",
			slog.String("error", err.Error()))
		// os.Exit skips deferred calls, so flush traces and logs
		// explicitly before exiting.
		a.Shutdown(ctx)
		os.Exit(1)
	}
	a.Shutdown(ctx)
}

func run(ctx context.Context, a *app.App, inFlag, outFlag, xlsxFlag string) error {
	input, err := a.ResolveInput(inFlag, config.DefaultEventsPDF)
	if err != nil {
		return err
	}

	doc, err := pdftables.Open(input, a.Logger)
	if err != nil {
		return err
	}
	defer doc.Close()

	a.Logger.InfoContext(ctx, "Extracting event finals",
		slog.String("input", input),
		slog.Int("pages", doc.NumPages()))

	table, err := dataprocessing.NewProcessor(a.Logger, a.Tracing).RunEvents(ctx, doc)
	if err != nil {
		return err
	}

	output := a.ResolveOutput(outFlag, config.DefaultEventsCSV)
	if err := exporter.NewTableExporter(a.Paths, a.Logger).ExportCSV(output, table); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %d rows to %s\n", len(table.Rows), output)

	if xlsxFlag != "" {
		return exporter.NewWorkbookExporter(a.Paths, a.Logger).
			ExportWorkbook(xlsxFlag, "Event Finals", table)
	}
	return nil
}
