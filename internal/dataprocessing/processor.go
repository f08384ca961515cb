package dataprocessing

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"gymcli/internal/config"
	apperrors "gymcli/internal/errors"
	"gymcli/internal/infrastructure"
	"gymcli/internal/pdftables"
	"gymcli/internal/validation"
	"gymcli/pkg/contracts/domain"
)

// Processor runs the extraction pipelines end to end: page grids out of
// a document, line or table recovery, record assembly, schema
// normalization. One Processor serves one run of one binary.
type Processor struct {
	logger    *slog.Logger
	tracing   *infrastructure.OTelProviders
	validator *validation.RecordValidator
}

// NewProcessor creates a processor. tracing may be nil, spans are then
// no-ops.
func NewProcessor(logger *slog.Logger, tracing *infrastructure.OTelProviders) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger.With(slog.String("component", "processor")),
		tracing:   tracing,
		validator: validation.NewRecordValidator(logger),
	}
}

// RunIndividual extracts individual all-around results. Every athlete in
// the output has all four apparatus resolved; blocks with fewer are
// discarded during assembly.
func (p *Processor) RunIndividual(ctx context.Context, doc *pdftables.Document) (*domain.Table, error) {
	ctx, span := p.tracing.StartStage(ctx, "individual_allaround",
		attribute.Int("pages", doc.NumPages()))
	defer span.End()

	lines, err := p.documentLines(ctx, doc)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		return nil, err
	}

	records := NewIndividualAssembler(p.logger).Assemble(ctx, lines)
	records = p.validator.FilterValid(records)
	if len(records) == 0 {
		err := apperrors.NewExtractionError("no individual all-around records found", apperrors.ErrNothingExtracted)
		infrastructure.RecordError(ctx, err)
		return nil, err
	}

	p.logger.InfoContext(ctx, "Individual all-around extraction complete",
		slog.Int("records", len(records)))
	return recordsTable(records), nil
}

// RunTeam extracts team all-around results. Athletes may resolve fewer
// than four apparatus; unresolved slots carry the unknown marker. The
// assembled records are returned alongside the table so callers can
// report partial athletes.
func (p *Processor) RunTeam(ctx context.Context, doc *pdftables.Document) (*domain.Table, []domain.Record, error) {
	ctx, span := p.tracing.StartStage(ctx, "team_allaround",
		attribute.Int("pages", doc.NumPages()))
	defer span.End()

	lines, err := p.documentLines(ctx, doc)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		return nil, nil, err
	}

	records := NewTeamAssembler(p.logger).Assemble(ctx, lines)
	records = p.validator.FilterValid(records)
	if len(records) == 0 {
		err := apperrors.NewExtractionError("no team all-around records found", apperrors.ErrNothingExtracted)
		infrastructure.RecordError(ctx, err)
		return nil, nil, err
	}

	p.logger.InfoContext(ctx, "Team all-around extraction complete",
		slog.Int("records", len(records)))
	return recordsTable(records), records, nil
}

// RunEvents extracts apparatus final results. Each page contributes its
// largest recovered table, labeled with the event detected from the
// page text; pages with no usable table are skipped. Blocks are merged
// onto the union of their columns.
func (p *Processor) RunEvents(ctx context.Context, doc *pdftables.Document) (*domain.Table, error) {
	ctx, span := p.tracing.StartStage(ctx, "event_finals",
		attribute.Int("pages", doc.NumPages()))
	defer span.End()

	events := ClassifyPages(doc.PageTexts(ctx))

	pageGrids, err := doc.AllPageGrids(ctx)
	if err != nil {
		err = apperrors.NewExtractionError("recover page tables", err)
		infrastructure.RecordError(ctx, err)
		return nil, err
	}

	var blocks []*domain.Table
	for i, grids := range pageGrids {
		largest := pdftables.LargestGrid(grids)
		if largest.CellCount() == 0 {
			p.logger.DebugContext(ctx, "Page has no table",
				slog.Int("page", i+1))
			continue
		}
		table := CleanEventTable(largest)
		if table.IsEmpty() {
			continue
		}
		event := config.UnknownEventLabel
		if i < len(events) {
			event = events[i]
		}
		blocks = append(blocks, AttachEvent(table, event))
		p.logger.DebugContext(ctx, "Event table extracted",
			slog.Int("page", i+1),
			slog.String("event", event),
			slog.Int("rows", len(table.Rows)))
	}

	if len(blocks) == 0 {
		err := apperrors.NewExtractionError("no event tables found", apperrors.ErrNothingExtracted)
		infrastructure.RecordError(ctx, err)
		return nil, err
	}

	merged := NormalizeSchema(blocks, NormalizeOptions{
		IdentityColumns: []string{"Event", "Name", "NOC"},
		Mode:            CoerceColumnwise,
	})

	p.logger.InfoContext(ctx, "Event finals extraction complete",
		slog.Int("events", len(blocks)),
		slog.Int("rows", len(merged.Rows)))
	return merged, nil
}

// documentLines recovers the normalized line sequence for the whole
// document: every table on every page, rows collapsed to single lines,
// in page order.
func (p *Processor) documentLines(ctx context.Context, doc *pdftables.Document) ([]string, error) {
	pageGrids, err := doc.AllPageGrids(ctx)
	if err != nil {
		return nil, apperrors.NewExtractionError("recover page tables", err)
	}

	var lines []string
	for _, grids := range pageGrids {
		for _, grid := range grids {
			lines = append(lines, NormalizeLines(grid)...)
		}
	}
	if len(lines) == 0 {
		return nil, apperrors.NewExtractionError("document yielded no text lines", apperrors.ErrNothingExtracted)
	}

	p.logger.DebugContext(ctx, "Document lines recovered",
		slog.Int("lines", len(lines)))
	return lines, nil
}

// recordsTable flattens assembled records onto the canonical result
// schema.
func recordsTable(records []domain.Record) *domain.Table {
	t := domain.NewTable(domain.RecordColumns())
	for i := range records {
		t.AppendRow(records[i].Row())
	}
	return t
}
