package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCredential_PrefixRouting(t *testing.T) {
	r := NewResolver("groq-key", "openrouter-key")

	cases := []struct {
		model string
		want  string
	}{
		{"openai/gpt-oss-120b", "openrouter-key"},
		{"llama-3.3-70b-versatile", "groq-key"},
		{"mixtral-8x7b-32768", "groq-key"},
		{"gemma-7b-it", "groq-key"},
		// No matching prefix falls through to Groq.
		{"qwen-2.5-72b", "groq-key"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, r.ResolveCredential(tc.model), "model %s", tc.model)
	}
}

func TestIsAvailable(t *testing.T) {
	groqOnly := NewResolver("groq-key", "")
	assert.True(t, groqOnly.IsAvailable("llama-3.3-70b-versatile"))
	assert.False(t, groqOnly.IsAvailable("openai/gpt-oss-120b"))

	// Empty model resolves to the default model, which routes to
	// OpenRouter.
	assert.False(t, groqOnly.IsAvailable(""))

	openRouterOnly := NewResolver("", "openrouter-key")
	assert.True(t, openRouterOnly.IsAvailable(""))
	assert.False(t, openRouterOnly.IsAvailable("llama-3.3-70b-versatile"))
}

func TestBuildClient_MissingKey(t *testing.T) {
	r := NewResolver("", "")

	_, err := r.BuildClient("llama-3.3-70b-versatile")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrModelUnavailable))
}

func TestBuildClient_ConfiguredKey(t *testing.T) {
	r := NewResolver("groq-key", "openrouter-key")

	client, err := r.BuildClient("llama-3.3-70b-versatile")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestListModels_AvailabilityRecomputed(t *testing.T) {
	r := NewResolver("groq-key", "")

	models := r.ListModels()
	require.Len(t, models, 2)

	byName := map[string]ModelInfo{}
	for _, m := range models {
		byName[m.Model] = m
	}

	assert.False(t, byName["openai/gpt-oss-120b"].Available)
	assert.Equal(t, "openrouter", byName["openai/gpt-oss-120b"].Provider)

	assert.True(t, byName["llama-3.3-70b-versatile"].Available)
	assert.Equal(t, "groq", byName["llama-3.3-70b-versatile"].Provider)
}
