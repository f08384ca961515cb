package pdftables

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/errgroup"

	apperrors "gymcli/internal/errors"
)

// maxConcurrentPages bounds per-page extraction parallelism. Pages are
// independent; only the downstream line stitching must stay sequential.
const maxConcurrentPages = 4

// Document wraps one open result PDF.
type Document struct {
	file   *os.File
	reader *pdf.Reader
	fonts  map[string]*pdf.Font
	logger *slog.Logger
}

// Open opens a result PDF for extraction. A file that cannot be opened or
// parsed at all aborts the whole run, so the error wraps
// ErrSourceUnreadable.
func Open(path string, logger *slog.Logger) (*Document, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w: %w", path, apperrors.ErrSourceUnreadable, err)
	}
	return &Document{
		file:   f,
		reader: r,
		fonts:  make(map[string]*pdf.Font),
		logger: logger,
	}, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	return d.file.Close()
}

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// PageText extracts the plain text of one page (1-based). Used by the
// event classifier, which only needs the page's raw text, not cell
// geometry.
func (d *Document) PageText(n int) (text string, err error) {
	defer func() {
		// The underlying reader panics on some malformed content streams.
		if r := recover(); r != nil {
			err = apperrors.NewExtractionError(
				fmt.Sprintf("panic extracting text from page %d", n),
				fmt.Errorf("%v", r))
		}
	}()

	p := d.reader.Page(n)
	if p.V.IsNull() {
		return "", nil
	}
	for _, name := range p.Fonts() {
		if _, ok := d.fonts[name]; !ok {
			font := p.Font(name)
			d.fonts[name] = &font
		}
	}
	text, err = p.GetPlainText(d.fonts)
	if err != nil {
		return "", apperrors.NewExtractionError(
			fmt.Sprintf("plain text extraction failed on page %d", n), err)
	}
	return strings.TrimSpace(text), nil
}

// PageTexts extracts plain text for every page. A page that fails yields
// an empty string and a log entry; the page is not fatal to the run.
func (d *Document) PageTexts(ctx context.Context) []string {
	texts := make([]string, d.NumPages())
	for i := 1; i <= d.NumPages(); i++ {
		text, err := d.PageText(i)
		if err != nil {
			d.logger.WarnContext(ctx, "page text extraction failed",
				slog.Int("page", i),
				slog.String("error", err.Error()))
			continue
		}
		texts[i-1] = text
	}
	return texts
}

// PageGrids extracts the candidate cell grids of one page (1-based), one
// grid per vertically separated block of rows. An empty slice means the
// page yielded no extractable table.
func (d *Document) PageGrids(n int) (grids []Grid, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.NewExtractionError(
				fmt.Sprintf("panic extracting rows from page %d", n),
				fmt.Errorf("%v", r))
		}
	}()

	p := d.reader.Page(n)
	if p.V.IsNull() {
		return nil, nil
	}
	rows, err := p.GetTextByRow()
	if err != nil {
		return nil, apperrors.NewExtractionError(
			fmt.Sprintf("row extraction failed on page %d", n), err)
	}
	return buildGrids(rows), nil
}

// AllPageGrids extracts candidate grids for every page, up to
// maxConcurrentPages pages at a time. The result is indexed by page
// (0-based); pages that fail extraction hold a nil slice and are logged,
// matching the skip-without-aborting policy for unextractable pages.
func (d *Document) AllPageGrids(ctx context.Context) ([][]Grid, error) {
	perPage := make([][]Grid, d.NumPages())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPages)
	for i := 1; i <= d.NumPages(); i++ {
		g.Go(func() error {
			grids, err := d.PageGrids(i)
			if err != nil {
				d.logger.WarnContext(ctx, "page grid extraction failed",
					slog.Int("page", i),
					slog.String("error", err.Error()))
				return nil
			}
			perPage[i-1] = grids
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return perPage, nil
}
