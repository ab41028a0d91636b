package calculator

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"craft-planner/core/catalog"
	"craft-planner/core/plan"
	"craft-planner/core/pool"
	"craft-planner/core/report"
	"craft-planner/core/request"
	"craft-planner/core/resolver"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Input is a calculation request.
type Input struct {
	// Items uses the text syntax. It is ignored when Requests is set.
	Items    string             `json:"items,omitempty" example:"Wooden Pickaxe, 1"`
	Requests []request.Item     `json:"requests,omitempty"`
	Pool     map[string]float64 `json:"pool,omitempty"`
}

// Output is the result of a calculation.
type Output struct {
	*plan.Plan
	Assumptions   []request.Assumption `json:"assumptions"`
	CatalogDigest string               `json:"catalog_digest"`
	Cached        bool                 `json:"cached"`
}

// Service runs calculations against the configured catalog.
type Service struct {
	loader *catalog.Loader
	cfg    resolver.Config
	cache  *gocache.Cache
	logger *zap.Logger
}

// NewService creates a new calculator service.
func NewService(loader *catalog.Loader, cfg resolver.Config, logger *zap.Logger) *Service {
	s := &Service{loader: loader, cfg: cfg, logger: logger}
	if ttl := cfg.ResultCacheTTL(); ttl > 0 {
		s.cache = gocache.New(ttl, 2*ttl)
	}
	return s
}

// Catalog returns the current catalog.
func (s *Service) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	return s.loader.Load(ctx)
}

// Calculate validates in and resolves it. Validation failures wrap request.ErrInvalidRequest.
func (s *Service) Calculate(ctx context.Context, in Input) (*Output, error) {
	cat, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var parsed request.Parsed
	if len(in.Requests) > 0 {
		parsed, err = request.Normalize(in.Requests, cat)
	} else {
		parsed, err = request.Parse(in.Items, cat)
	}
	if err != nil {
		return nil, err
	}

	initial, err := pool.FromMap(in.Pool)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", request.ErrInvalidRequest, err)
	}

	key := cacheKey(cat.Digest(), parsed.Items, initial)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			out := *cached.(*Output)
			out.Assumptions = parsed.Assumptions
			out.Cached = true
			return &out, nil
		}
	}

	r := resolver.New(cat, resolver.WithLogger(s.logger), resolver.WithMaxDepth(s.cfg.MaxDepth))
	p := plan.Build(r, parsed.Items, initial)
	s.logger.Debug("Calculation resolved",
		zap.Strings("items", parsed.Names()),
		zap.Bool("complete", p.Summary.Complete),
		zap.Int("base_resources", p.Summary.BaseResources))

	out := &Output{
		Plan:          p,
		Assumptions:   parsed.Assumptions,
		CatalogDigest: cat.Digest(),
	}
	if s.cache != nil {
		s.cache.SetDefault(key, out)
	}
	return out, nil
}

// Render runs Calculate and renders the text report.
func (s *Service) Render(ctx context.Context, in Input) (string, error) {
	out, err := s.Calculate(ctx, in)
	if err != nil {
		return "", err
	}
	cat, err := s.loader.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load catalog: %w", err)
	}

	var b strings.Builder
	for _, a := range out.Assumptions {
		fmt.Fprintf(&b, "Assuming '%s' meant '%s'\n", a.Input, a.Matched)
	}
	b.WriteString(report.Render(out.Plan, cat.IsBase))
	return b.String(), nil
}

// Flush drops every cached result.
func (s *Service) Flush() {
	if s.cache != nil {
		s.cache.Flush()
	}
}

func cacheKey(digest string, items []request.Item, p pool.Pool) string {
	var b strings.Builder
	b.WriteString(digest)
	b.WriteByte('|')
	for _, it := range items {
		b.WriteString(it.Name)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(it.Qty, 'g', -1, 64))
		b.WriteByte(';')
	}
	b.WriteByte('|')
	for _, name := range p.Items() {
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(p.Get(name), 'g', -1, 64))
		b.WriteByte(';')
	}
	return b.String()
}
