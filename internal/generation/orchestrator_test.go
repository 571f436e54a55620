package generation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagecraft/internal/domain"
	"pagecraft/internal/domain/specjson"
	"pagecraft/internal/domain/specjson/specjsontest"
	"pagecraft/internal/providers/llm"
)

type generateResult struct {
	spec *specjson.GeneratedSpec
	err  error
}

type fakeGenerator struct {
	mu      sync.Mutex
	results []generateResult
	prompts []string
	block   bool
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (*specjson.GeneratedSpec, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	block := f.block
	var res generateResult
	if len(f.results) > 0 {
		res = f.results[0]
		f.results = f.results[1:]
	}
	f.mu.Unlock()
	if block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return res.spec, res.err
}

func (f *fakeGenerator) Name() string { return "fake" }

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

type memoryPages struct {
	mu      sync.Mutex
	pages   []domain.Page
	findErr error
}

func (m *memoryPages) FindOne(ctx context.Context, userID, businessName string) (*domain.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, p := range m.pages {
		if p.UserID == userID && p.BusinessName == businessName {
			page := p
			return &page, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memoryPages) Create(ctx context.Context, page *domain.Page) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	page.ID = fmt.Sprintf("page-%d", len(m.pages)+1)
	m.pages = append(m.pages, *page)
	return nil
}

func (m *memoryPages) GetByID(ctx context.Context, id string) (*domain.Page, error) {
	return nil, domain.ErrNotFound
}

func (m *memoryPages) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Page, error) {
	return nil, nil
}

func missing(t *testing.T, sections ...specjson.Section) error {
	t.Helper()
	_, err := specjson.Decode(specjsontest.Without(sections...))
	require.Error(t, err)
	return err
}

func request() Request {
	return Request{
		UserID: "user-1",
		Answers: domain.WizardAnswers{
			BusinessName: "Acme Bottles",
			Product:      "eco-friendly water bottles",
			Audience:     "commuters",
			Goal:         domain.GoalSales,
			Tone:         domain.ToneFriendly,
			PrimaryColor: "#2563eb",
		},
		Country:   "NL",
		RequestID: "req-1",
	}
}

func newTestOrchestrator(t *testing.T, gen *fakeGenerator, pages *memoryPages, mutate ...func(*Options)) *Orchestrator {
	t.Helper()
	opts := Options{Generator: gen, Pages: pages, Logger: zerolog.Nop()}
	for _, m := range mutate {
		m(&opts)
	}
	o, err := NewOrchestrator(opts)
	require.NoError(t, err)
	return o
}

func TestGenerateFirstAttemptSucceeds(t *testing.T) {
	gen := &fakeGenerator{results: []generateResult{{spec: specjsontest.Valid()}}}
	pages := &memoryPages{}
	o := newTestOrchestrator(t, gen, pages)

	res, err := o.Generate(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Attempts)
	assert.False(t, res.Repaired)
	assert.Equal(t, "page-1", res.Page.ID)
	assert.Equal(t, domain.PageStatusPublished, res.Page.Status)
	assert.True(t, res.Page.Spec.Design.Complete())
	assert.Equal(t, specjson.IndustryOther, *res.Page.Spec.Design.Industry)
	assert.Equal(t, domain.PageMetadata{Provider: "fake", Attempts: 1, Country: "NL", RequestID: "req-1"}, res.Page.Metadata)
	require.Len(t, pages.pages, 1)
	assert.Equal(t, 1, gen.calls())
}

func TestGenerateRepairsWatchedSection(t *testing.T) {
	gen := &fakeGenerator{results: []generateResult{
		{err: missing(t, specjson.SectionAbout, specjson.SectionFeatures)},
		{spec: specjsontest.Valid()},
	}}
	pages := &memoryPages{}
	o := newTestOrchestrator(t, gen, pages)

	res, err := o.Generate(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Attempts)
	assert.True(t, res.Repaired)
	assert.True(t, res.Page.Metadata.Repaired)

	require.Equal(t, 2, gen.calls())
	assert.Contains(t, gen.prompts[1], gen.prompts[0][:200])
	assert.Contains(t, gen.prompts[1], "missing or invalid: features, about.")
	require.Len(t, pages.pages, 1)
}

func TestGenerateDoesNotRepairUnwatchedSection(t *testing.T) {
	first := missing(t, specjson.SectionFAQ)
	gen := &fakeGenerator{results: []generateResult{{err: first}, {spec: specjsontest.Valid()}}}
	pages := &memoryPages{}
	o := newTestOrchestrator(t, gen, pages)

	_, err := o.Generate(context.Background(), request())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	verr, ok := specjson.AsValidationError(err)
	require.True(t, ok)
	assert.Same(t, first, error(verr))
	assert.Equal(t, 1, gen.calls())
	assert.Empty(t, pages.pages)
}

func TestGenerateStopsAfterFailedRepair(t *testing.T) {
	second := missing(t, specjson.SectionTestimonials)
	gen := &fakeGenerator{results: []generateResult{
		{err: missing(t, specjson.SectionTestimonials)},
		{err: second},
		{spec: specjsontest.Valid()},
	}}
	pages := &memoryPages{}
	o := newTestOrchestrator(t, gen, pages)

	_, err := o.Generate(context.Background(), request())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	verr, ok := specjson.AsValidationError(err)
	require.True(t, ok)
	assert.Same(t, second, error(verr))
	assert.Equal(t, 2, gen.calls())
	assert.Empty(t, pages.pages)
}

func TestGenerateDoesNotRepairUpstreamFailure(t *testing.T) {
	upstream := &llm.UpstreamError{Provider: "fake", Status: 503, Reason: "http_503"}
	gen := &fakeGenerator{results: []generateResult{{err: upstream}}}
	o := newTestOrchestrator(t, gen, &memoryPages{})

	_, err := o.Generate(context.Background(), request())
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.ErrorIs(t, err, domain.ErrUpstreamGeneration)
	assert.Equal(t, 1, gen.calls())
}

func TestGenerateRejectsDuplicateBusinessName(t *testing.T) {
	gen := &fakeGenerator{results: []generateResult{{spec: specjsontest.Valid()}}}
	pages := &memoryPages{pages: []domain.Page{{ID: "existing", UserID: "user-1", BusinessName: "Acme Bottles"}}}
	o := newTestOrchestrator(t, gen, pages)

	req := request()
	req.Answers.BusinessName = "  Acme Bottles "
	_, err := o.Generate(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDuplicateBusinessName)
	assert.Equal(t, 0, gen.calls())
	assert.Len(t, pages.pages, 1)
}

func TestGenerateSameNameForOtherUser(t *testing.T) {
	gen := &fakeGenerator{results: []generateResult{{spec: specjsontest.Valid()}}}
	pages := &memoryPages{pages: []domain.Page{{ID: "existing", UserID: "user-2", BusinessName: "Acme Bottles"}}}
	o := newTestOrchestrator(t, gen, pages)

	_, err := o.Generate(context.Background(), request())
	require.NoError(t, err)
	assert.Len(t, pages.pages, 2)
}

func TestGenerateRejectsMissingAnswers(t *testing.T) {
	gen := &fakeGenerator{}
	o := newTestOrchestrator(t, gen, &memoryPages{})

	req := request()
	req.Answers.Product = ""
	_, err := o.Generate(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrMissingRequiredAnswers)
	assert.Equal(t, 0, gen.calls())
}

func TestGeneratePropagatesLookupFailure(t *testing.T) {
	boom := errors.New("connection refused")
	gen := &fakeGenerator{}
	o := newTestOrchestrator(t, gen, &memoryPages{findErr: boom})

	_, err := o.Generate(context.Background(), request())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, gen.calls())
}

func TestGenerateAppliesAttemptDeadline(t *testing.T) {
	gen := &fakeGenerator{block: true}
	pages := &memoryPages{}
	o := newTestOrchestrator(t, gen, pages, func(opts *Options) {
		opts.Timeout = 20 * time.Millisecond
	})

	start := time.Now()
	_, err := o.Generate(context.Background(), request())
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, 1, gen.calls())
	assert.Empty(t, pages.pages)
}

func TestGenerateCustomRepairSections(t *testing.T) {
	gen := &fakeGenerator{results: []generateResult{
		{err: missing(t, specjson.SectionFAQ)},
		{spec: specjsontest.Valid()},
	}}
	o := newTestOrchestrator(t, gen, &memoryPages{}, func(opts *Options) {
		opts.RepairSections = []specjson.Section{specjson.SectionFAQ}
	})

	res, err := o.Generate(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Attempts)
	assert.Contains(t, gen.prompts[1], "missing or invalid: faq.")
}

func TestGenerateNilSpecIsFailure(t *testing.T) {
	gen := &fakeGenerator{results: []generateResult{{}}}
	o := newTestOrchestrator(t, gen, &memoryPages{})
	_, err := o.Generate(context.Background(), request())
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestNewOrchestratorRequiresCollaborators(t *testing.T) {
	_, err := NewOrchestrator(Options{Pages: &memoryPages{}})
	assert.Error(t, err)
	_, err = NewOrchestrator(Options{Generator: &fakeGenerator{}})
	assert.Error(t, err)
}

func TestParseSections(t *testing.T) {
	got, err := ParseSections([]string{"about", " FAQ ", ""})
	require.NoError(t, err)
	assert.Equal(t, []specjson.Section{specjson.SectionAbout, specjson.SectionFAQ}, got)

	_, err = ParseSections([]string{"pricing"})
	assert.Error(t, err)
}
