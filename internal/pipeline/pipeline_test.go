package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"marketboard/internal/catalog"
	"marketboard/internal/extract"
	"marketboard/internal/fetcher"
	"marketboard/internal/market"
	"marketboard/internal/render"
	"marketboard/internal/testutil"
)

func newPipeline(source fetcher.Source) *Pipeline {
	return New(source, extract.DefaultLocator(), catalog.Default())
}

func TestNew(t *testing.T) {
	source := testutil.NewMockSource("", nil)
	p := newPipeline(source)

	if p == nil {
		t.Fatal("New() returned nil")
	}
	if p.source != source {
		t.Error("New() did not keep the source")
	}
}

func TestRun_Success(t *testing.T) {
	html := testutil.Page(
		testutil.Row("دلار", "58000"),
		testutil.Row("بیت‌کوین", "3,100,000,000"),
		testutil.Row("سکه امامی", "42,000,000"),
	)

	outcome := newPipeline(testutil.NewMockSource(html, nil)).Run(context.Background())

	if !outcome.OK() {
		t.Fatalf("Run() returned unexpected error: %v", outcome.Err)
	}

	want := market.Results{
		catalog.Gold:     {{Name: "سکه امامی", Price: "42,000,000"}},
		catalog.Currency: {{Name: "دلار", Price: "58000"}},
		catalog.Crypto:   {{Name: "بیت‌کوین", Price: "3,100,000,000"}},
	}
	if diff := cmp.Diff(want, outcome.Results); diff != "" {
		t.Errorf("Run() results mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_FetchError(t *testing.T) {
	fetchErr := fetcher.NewNetworkError("mock://markets", errors.New("connection reset"))

	outcome := newPipeline(testutil.NewMockSource("", fetchErr)).Run(context.Background())

	if outcome.OK() {
		t.Fatal("Run() expected error, got success")
	}
	if !errors.Is(outcome.Err, fetchErr) {
		t.Errorf("Run() error = %v, want %v", outcome.Err, fetchErr)
	}
	if outcome.Results != nil {
		t.Errorf("Run() results = %v, want nil on failure", outcome.Results)
	}
}

func TestRun_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "run")

	source := &testutil.MockSource{
		FetchFunc: func(ctx context.Context) (string, error) {
			if ctx.Value(key{}) != "run" {
				t.Error("Fetch() did not receive the run context")
			}
			return "", nil
		},
	}

	if outcome := newPipeline(source).Run(ctx); !outcome.OK() {
		t.Errorf("Run() returned unexpected error: %v", outcome.Err)
	}
}

func TestLoad_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		html         string
		fetchErr     error
		wantGold     []render.Item
		wantCurrency []render.Item
		wantCrypto   []render.Item
		wantNotice   string
	}{
		{
			name:         "single currency row",
			html:         testutil.Page(testutil.Row("دلار", "58000")),
			wantCurrency: []render.Item{{Name: "دلار", Price: "58000"}},
		},
		{
			name: "unrecognized row is dropped",
			html: testutil.Page(
				testutil.Row("چیز نامشخص", "1"),
				testutil.Row("یورو", "63000"),
			),
			wantCurrency: []render.Item{{Name: "یورو", Price: "63000"}},
		},
		{
			name:       "fetch failure",
			fetchErr:   errors.New("simulated network error"),
			wantNotice: render.ErrorMessage,
		},
		{
			name: "row missing price",
			html: testutil.Page(
				`<a class="h-16 border-b"><p class="text-sm">تتر</p></a>`,
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := render.NewPage()
			p := newPipeline(testutil.NewMockSource(tt.html, tt.fetchErr))

			outcome := p.Load(context.Background(), page.Board())

			if (outcome.Err != nil) != (tt.fetchErr != nil) {
				t.Fatalf("Load() error = %v, want error %v", outcome.Err, tt.fetchErr)
			}
			if diff := cmp.Diff(tt.wantGold, page.Gold.Items()); diff != "" {
				t.Errorf("gold panel mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantCurrency, page.Currency.Items()); diff != "" {
				t.Errorf("currency panel mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantCrypto, page.Crypto.Items()); diff != "" {
				t.Errorf("crypto panel mismatch (-want +got):\n%s", diff)
			}
			if page.Gold.Notice() != tt.wantNotice {
				t.Errorf("gold notice = %q, want %q", page.Gold.Notice(), tt.wantNotice)
			}
			if page.Currency.Notice() != "" || page.Crypto.Notice() != "" {
				t.Error("currency or crypto panel shows a notice")
			}
		})
	}
}

func TestLoad_FailureResetsPreviousBoard(t *testing.T) {
	page := render.NewPage()
	page.Currency.Append(render.Item{Name: "دلار", Price: "57000"})
	page.Crypto.Append(render.Item{Name: "تتر", Price: "59000"})

	p := newPipeline(testutil.NewMockSource("", &extract.ParseError{Cause: errors.New("bad markup")}))
	outcome := p.Load(context.Background(), page.Board())

	var parseErr *extract.ParseError
	if !errors.As(outcome.Err, &parseErr) {
		t.Fatalf("Load() error = %v, want *extract.ParseError", outcome.Err)
	}
	if len(page.Currency.Items()) != 0 || len(page.Crypto.Items()) != 0 {
		t.Error("Load() left stale items after a failure")
	}
	if page.Gold.Notice() != render.ErrorMessage {
		t.Errorf("gold notice = %q, want %q", page.Gold.Notice(), render.ErrorMessage)
	}
}
