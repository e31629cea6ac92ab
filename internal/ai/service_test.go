package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel records the request it receives and returns a canned
// response or error.
type fakeModel struct {
	response string
	err      error

	messages []llms.MessageContent
	opts     llms.CallOptions
	calls    int
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	f.messages = messages
	for _, opt := range options {
		opt(&f.opts)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func serviceWith(model *fakeModel) *Service {
	s := NewService(NewResolver("groq-key", "router-key"))
	s.buildClient = func(string) (llms.Model, error) {
		return model, nil
	}
	return s
}

func floatPtr(v float64) *float64 { return &v }

func TestContinue_TrimsResponseAndAppliesDefaults(t *testing.T) {
	model := &fakeModel{response: "\n  Hujan turun semakin deras.  \n"}
	s := serviceWith(model)

	got, err := s.Continue(context.Background(), ContinuationParams{
		Context: "Langit mulai gelap.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hujan turun semakin deras.", got)

	assert.Equal(t, 1, model.calls)
	assert.Equal(t, defaultTemperature, model.opts.Temperature)
	assert.Equal(t, defaultContinuationTokens, model.opts.MaxTokens)
	assert.Equal(t, continuationStops, model.opts.StopWords)
}

func TestContinue_ExplicitZeroTemperature(t *testing.T) {
	model := &fakeModel{response: "Hasil.", opts: llms.CallOptions{Temperature: -1}}
	s := serviceWith(model)

	_, err := s.Continue(context.Background(), ContinuationParams{
		Context:     "Langit mulai gelap.",
		Temperature: floatPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, model.opts.Temperature)
}

func TestImprove_ExplicitTemperatureForwarded(t *testing.T) {
	model := &fakeModel{response: "Teks yang lebih baik."}
	s := serviceWith(model)

	_, err := s.Improve(context.Background(), ImprovementParams{
		Text:        "Teks asli.",
		Temperature: floatPtr(0.2),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.2, model.opts.Temperature)
	assert.Equal(t, improvementStops, model.opts.StopWords)
}

func TestGenerate_ProviderErrorIsWrappedOnce(t *testing.T) {
	cause := errors.New("rate limit exceeded")
	model := &fakeModel{err: cause}
	s := serviceWith(model)

	_, err := s.Continue(context.Background(), ContinuationParams{Context: "Langit mulai gelap."})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "continuation")
	assert.Contains(t, err.Error(), "rate limit exceeded")
	assert.Equal(t, 1, model.calls, "a failed call must not be retried")
}

func TestGenerate_EmptyChoicesIsAnError(t *testing.T) {
	s := NewService(NewResolver("groq-key", ""))
	s.buildClient = func(string) (llms.Model, error) {
		return emptyResponseModel{}, nil
	}

	_, err := s.Improve(context.Background(), ImprovementParams{Text: "Teks asli."})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

type emptyResponseModel struct{}

func (emptyResponseModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	return &llms.ContentResponse{}, nil
}

func (emptyResponseModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func TestGenerate_UnconfiguredProviderFailsBeforeCalling(t *testing.T) {
	s := NewService(NewResolver("", ""))

	_, err := s.Continue(context.Background(), ContinuationParams{Context: "Langit mulai gelap."})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestSuggestTitles_ParsesModelOutput(t *testing.T) {
	model := &fakeModel{response: "1. Senja di Pelabuhan\n2. Kota Tanpa Nama\n"}
	s := serviceWith(model)

	titles, err := s.SuggestTitles(context.Background(), TitleParams{
		Content: strings.Repeat("Cerita panjang. ", 20),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Senja di Pelabuhan", "Kota Tanpa Nama"}, titles)
	assert.Equal(t, titleMaxTokens, model.opts.MaxTokens)
}

func TestLiveReview_AnchorsIssuesFromModelOutput(t *testing.T) {
	content := "Dia pergi ke pasar. Dia membeli ikan segar di sana."
	model := &fakeModel{response: `[
		{"severity": "warning", "type": "style", "original_text": "Dia membeli ikan segar di sana.", "suggestion": "Variasikan awal kalimat."}
	]`}
	s := serviceWith(model)

	issues, err := s.LiveReview(context.Background(), ReviewParams{Content: content})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 20, issues[0].StartOffset)
	assert.Equal(t, reviewMaxTokens, model.opts.MaxTokens)
}
