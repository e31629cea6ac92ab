// Package ai orchestrates the LLM-backed writing operations: story
// continuation, text improvement, title suggestion, and live review.
// It resolves models to provider credentials, builds prompts from the
// style catalogs, and post-processes raw model output into structured
// results.
package ai

import (
	"context"
	"errors"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

const (
	defaultTemperature        = 0.7
	defaultContinuationTokens = 2000
	titleMaxTokens            = 10000
	reviewMaxTokens           = 4000
)

// ContinuationParams configures a story continuation request. Zero
// values resolve to defaults (one paragraph, 2000 tokens, the default
// model and writing style). A nil Temperature means 0.7; an explicit
// 0 is honored for deterministic sampling.
type ContinuationParams struct {
	Context        string
	MaxTokens      int
	Temperature    *float64
	WritingStyle   string
	ParagraphCount int
	BriefIdea      string
	Model          string
	CustomPrompts  map[string]string
}

// ImprovementParams configures a text improvement request.
type ImprovementParams struct {
	Text          string
	Instruction   string
	Temperature   *float64
	WritingStyle  string
	Model         string
	CustomPrompts map[string]string
}

// TitleParams configures a title suggestion request.
type TitleParams struct {
	Content     string
	TitleStyle  string
	Temperature *float64
	Model       string
}

// ReviewParams configures a live review request.
type ReviewParams struct {
	Content     string
	Temperature *float64
	Model       string
}

// Service coordinates all LLM operations. Construct one per process
// with NewService and share it; it is safe for concurrent use.
type Service struct {
	resolver *Resolver

	// buildClient defaults to the resolver's factory; tests substitute
	// a fake model here.
	buildClient func(model string) (llms.Model, error)
}

// NewService builds a Service on top of a credential resolver.
func NewService(resolver *Resolver) *Service {
	return &Service{
		resolver:    resolver,
		buildClient: resolver.BuildClient,
	}
}

// Continue generates a continuation of the given context in the
// requested writing style.
func (s *Service) Continue(ctx context.Context, p ContinuationParams) (string, error) {
	if p.MaxTokens <= 0 {
		p.MaxTokens = defaultContinuationTokens
	}
	if p.ParagraphCount <= 0 {
		p.ParagraphCount = 1
	}

	return s.generate(ctx, "continuation", p.Model, continuationMessages(p),
		llms.WithTemperature(temperatureOrDefault(p.Temperature)),
		llms.WithMaxTokens(p.MaxTokens),
		llms.WithStopWords(continuationStops),
	)
}

// Improve rewrites text per the given instruction while preserving the
// story and its emotional register.
func (s *Service) Improve(ctx context.Context, p ImprovementParams) (string, error) {
	return s.generate(ctx, "improvement", p.Model, improvementMessages(p),
		llms.WithTemperature(temperatureOrDefault(p.Temperature)),
		llms.WithStopWords(improvementStops),
	)
}

// SuggestTitles generates up to five title candidates for the content.
// Fewer than five is not an error; the model simply produced fewer
// usable list lines.
func (s *Service) SuggestTitles(ctx context.Context, p TitleParams) ([]string, error) {
	raw, err := s.generate(ctx, "title suggestion", p.Model, titleMessages(p),
		llms.WithTemperature(temperatureOrDefault(p.Temperature)),
		llms.WithMaxTokens(titleMaxTokens),
	)
	if err != nil {
		return nil, err
	}
	return parseTitles(raw), nil
}

// LiveReview analyzes content and returns anchored issues. A response
// the model garbled beyond repair yields an empty issue list, not an
// error; only transport and configuration failures are returned.
func (s *Service) LiveReview(ctx context.Context, p ReviewParams) ([]ReviewIssue, error) {
	raw, err := s.generate(ctx, "live review", p.Model, reviewMessages(p.Content),
		llms.WithTemperature(temperatureOrDefault(p.Temperature)),
		llms.WithMaxTokens(reviewMaxTokens),
	)
	if err != nil {
		return nil, err
	}
	return parseReviewIssues(raw, p.Content), nil
}

// IsModelAvailable reports whether the model can be served with the
// configured credentials.
func (s *Service) IsModelAvailable(model string) bool {
	return s.resolver.IsAvailable(model)
}

// ProviderInfo returns the advertised models with current availability.
func (s *Service) ProviderInfo() []ModelInfo {
	return s.resolver.ListModels()
}

func (s *Service) generate(ctx context.Context, operation, model string, messages []llms.MessageContent, opts ...llms.CallOption) (string, error) {
	client, err := s.buildClient(model)
	if err != nil {
		return "", err
	}

	resp, err := client.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", providerError(operation, err)
	}
	if len(resp.Choices) == 0 {
		return "", providerError(operation, errors.New("provider returned no choices"))
	}

	return strings.TrimSpace(resp.Choices[0].Content), nil
}

func temperatureOrDefault(t *float64) float64 {
	if t != nil {
		return *t
	}
	return defaultTemperature
}
