package pipeline

import (
	"context"
	"log/slog"

	"marketboard/internal/catalog"
	"marketboard/internal/extract"
	"marketboard/internal/fetcher"
	"marketboard/internal/market"
	"marketboard/internal/render"
)

// ErrorLabel is logged alongside any error that aborts a run
const ErrorLabel = "failed to fetch or process market data"

// Outcome is the result of one run: either classified results or the error that aborted it
type Outcome struct {
	Results market.Results
	Err     error
}

// OK reports whether the run succeeded
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Pipeline fetches the listing page, extracts its rows and classifies them
type Pipeline struct {
	source  fetcher.Source
	locator extract.RowLocator
	catalog *catalog.Catalog
}

// New creates a new Pipeline
func New(source fetcher.Source, locator extract.RowLocator, c *catalog.Catalog) *Pipeline {
	return &Pipeline{
		source:  source,
		locator: locator,
		catalog: c,
	}
}

// Run executes Fetch, Parse, Extract and Classify in order.
// A fetch or parse failure aborts the run before anything is classified.
func (p *Pipeline) Run(ctx context.Context) Outcome {
	html, err := p.source.Fetch(ctx)
	if err != nil {
		return Outcome{Err: err}
	}

	doc, err := extract.Parse(html)
	if err != nil {
		return Outcome{Err: err}
	}

	entries := extract.Extract(doc, p.locator)
	results := market.Classify(entries, p.catalog)

	slog.Debug("classified listing rows",
		"url", p.source.URL(),
		"rows", len(entries),
		"gold", len(results[catalog.Gold]),
		"currency", len(results[catalog.Currency]),
		"crypto", len(results[catalog.Crypto]))

	return Outcome{Results: results}
}

// Load runs the pipeline and renders its outcome onto board.
// Failures are logged and shown on the board; they never escape as panics.
// The outcome is returned for callers that want to report it.
func (p *Pipeline) Load(ctx context.Context, board *render.Board) Outcome {
	outcome := p.Run(ctx)
	if !outcome.OK() {
		slog.Error(ErrorLabel, "error", outcome.Err, "url", p.source.URL())
		render.RenderError(board)
		return outcome
	}

	render.Render(board, outcome.Results)
	return outcome
}
