// Package generation runs the generate, validate and repair cycle that turns
// wizard answers into a stored page.
package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"pagecraft/internal/design"
	"pagecraft/internal/domain"
	"pagecraft/internal/domain/specjson"
	"pagecraft/internal/providers/llm"
	"pagecraft/internal/providers/prompt"
)

const (
	attemptFirst  = "first"
	attemptRepair = "repair"
)

// DefaultRepairSections are the sections whose failure earns one repair
// attempt.
var DefaultRepairSections = []specjson.Section{
	specjson.SectionAbout,
	specjson.SectionTestimonials,
	specjson.SectionFeatures,
}

// Enricher completes the design block of a validated spec.
type Enricher interface {
	Enrich(spec *specjson.GeneratedSpec, answers domain.WizardAnswers) *specjson.GeneratedSpec
}

type Options struct {
	Generator llm.Generator
	Pages     domain.PageRepository
	Enricher  Enricher
	Logger    zerolog.Logger
	// Timeout bounds each generation attempt. Zero means no deadline beyond
	// the caller's context.
	Timeout time.Duration
	// RepairSections overrides DefaultRepairSections when non-empty.
	RepairSections []specjson.Section
}

// Orchestrator holds no per-request state and is safe for concurrent use.
type Orchestrator struct {
	generator llm.Generator
	pages     domain.PageRepository
	enricher  Enricher
	logger    zerolog.Logger
	timeout   time.Duration
	watch     specjson.SectionSet
}

func NewOrchestrator(opts Options) (*Orchestrator, error) {
	if opts.Generator == nil {
		return nil, errors.New("generation: generator is required")
	}
	if opts.Pages == nil {
		return nil, errors.New("generation: page repository is required")
	}
	enricher := opts.Enricher
	if enricher == nil {
		enricher = design.NewEnricher(nil)
	}
	watch := opts.RepairSections
	if len(watch) == 0 {
		watch = DefaultRepairSections
	}
	return &Orchestrator{
		generator: opts.Generator,
		pages:     opts.Pages,
		enricher:  enricher,
		logger:    opts.Logger,
		timeout:   opts.Timeout,
		watch:     specjson.NewSectionSet(watch...),
	}, nil
}

type Request struct {
	UserID    string
	Answers   domain.WizardAnswers
	Country   string
	RequestID string
}

type Result struct {
	Page     *domain.Page
	Attempts int
	Repaired bool
}

// Generate validates the answers, refuses a business name the user already
// has a page for, generates the spec (repairing once when a watched section
// is missing or invalid), enriches it and stores the page. Nothing is stored
// unless every step succeeds. Generation failures match
// domain.ErrGenerationFailed and still expose their cause to errors.As.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*Result, error) {
	answers := req.Answers
	answers.Normalize()
	if err := answers.Validate(); err != nil {
		return nil, err
	}

	log := o.logger.With().
		Str("user_id", req.UserID).
		Str("business_name", answers.BusinessName).
		Str("request_id", req.RequestID).
		Str("provider", o.generator.Name()).
		Logger()

	existing, err := o.pages.FindOne(ctx, req.UserID, answers.BusinessName)
	switch {
	case err == nil && existing != nil:
		log.Info().Str("page_id", existing.ID).Msg("duplicate business name")
		return nil, domain.ErrDuplicateBusinessName
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("check existing page: %w", err)
	}

	base := prompt.Build(answers)
	attempts := 1
	spec, err := o.attempt(ctx, log, attemptFirst, base)
	if err != nil {
		sections := o.repairable(err)
		if len(sections) == 0 {
			log.Error().Err(err).Msg("generation failed")
			return nil, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
		}
		attempts++
		spec, err = o.attempt(ctx, log, attemptRepair, prompt.BuildRepair(base, sections))
		if err != nil {
			log.Error().Err(err).Msg("generation failed after repair")
			return nil, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
		}
	}

	page := &domain.Page{
		UserID:       req.UserID,
		BusinessName: answers.BusinessName,
		Answers:      answers,
		Spec:         o.enricher.Enrich(spec, answers),
		Status:       domain.PageStatusPublished,
		Metadata: domain.PageMetadata{
			Provider:  o.generator.Name(),
			Attempts:  attempts,
			Repaired:  attempts > 1,
			Country:   req.Country,
			RequestID: req.RequestID,
		},
	}
	if err := o.pages.Create(ctx, page); err != nil {
		return nil, fmt.Errorf("store page: %w", err)
	}
	log.Info().Str("page_id", page.ID).Int("attempts", attempts).Msg("page generated")
	return &Result{Page: page, Attempts: attempts, Repaired: attempts > 1}, nil
}

func (o *Orchestrator) attempt(ctx context.Context, log zerolog.Logger, name, p string) (*specjson.GeneratedSpec, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}
	start := time.Now()
	spec, err := o.generator.Generate(ctx, p)
	if err == nil && spec == nil {
		err = errors.New("generator returned no spec")
	}

	ev := log.Info()
	if err != nil {
		ev = log.Warn().Err(err)
		if verr, ok := specjson.AsValidationError(err); ok {
			ev = ev.Str("sections", joinSections(verr.Sections().Sorted()))
		}
	}
	ev.Str("attempt", name).Dur("duration", time.Since(start)).Msg("generation attempt")
	return spec, err
}

// repairable returns the watched sections implicated by err. Only schema
// violations qualify; upstream failures never do.
func (o *Orchestrator) repairable(err error) []specjson.Section {
	verr, ok := specjson.AsValidationError(err)
	if !ok {
		return nil
	}
	return verr.Sections().Intersect(o.watch)
}

// ParseSections converts configured section names, rejecting unknown ones.
func ParseSections(names []string) ([]specjson.Section, error) {
	var out []specjson.Section
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		section, ok := specjson.ParseSection(name)
		if !ok {
			return nil, fmt.Errorf("generation: unknown section %q", name)
		}
		out = append(out, section)
	}
	return out, nil
}

func joinSections(sections []specjson.Section) string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = string(s)
	}
	return strings.Join(names, ",")
}
