package ai

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// DefaultModel is used when a request leaves the model unspecified.
const DefaultModel = "openai/gpt-oss-120b"

const requestTimeout = 30 * time.Second

// provider names a credential family. Both current providers expose
// OpenAI-compatible chat completion endpoints, so they differ only in
// base URL and API key.
type provider string

const (
	providerGroq       provider = "groq"
	providerOpenRouter provider = "openrouter"
)

var providerBaseURLs = map[provider]string{
	providerGroq:       "https://api.groq.com/openai/v1",
	providerOpenRouter: "https://openrouter.ai/api/v1",
}

// credentialRule maps a model name prefix to a provider. Rules are
// evaluated in order; the first match wins.
type credentialRule struct {
	prefix   string
	provider provider
}

var credentialRules = []credentialRule{
	{prefix: "openai/", provider: providerOpenRouter},
	{prefix: "llama-", provider: providerGroq},
	{prefix: "mixtral-", provider: providerGroq},
	{prefix: "gemma-", provider: providerGroq},
}

// knownModels is the advertised model list. Availability is recomputed
// per call from the configured keys, never cached.
var knownModels = []string{
	"openai/gpt-oss-120b",
	"llama-3.3-70b-versatile",
}

// ModelInfo describes one advertised model and whether the resolver can
// currently build a client for it.
type ModelInfo struct {
	Model     string `json:"model"`
	Provider  string `json:"provider"`
	Available bool   `json:"available"`
}

// Resolver maps model names to provider credentials and builds LLM
// clients. It holds whatever keys were configured at startup; a missing
// key degrades the affected models to unavailable without failing
// construction.
type Resolver struct {
	groqAPIKey       string
	openRouterAPIKey string
}

// NewResolver builds a resolver from the configured API keys. Either or
// both keys may be empty.
func NewResolver(groqAPIKey, openRouterAPIKey string) *Resolver {
	return &Resolver{
		groqAPIKey:       groqAPIKey,
		openRouterAPIKey: openRouterAPIKey,
	}
}

// resolveProvider returns the credential family for a model name. Models
// matching no rule fall through to Groq.
func resolveProvider(model string) provider {
	for _, rule := range credentialRules {
		if strings.HasPrefix(model, rule.prefix) {
			return rule.provider
		}
	}
	return providerGroq
}

func (r *Resolver) credential(p provider) string {
	switch p {
	case providerOpenRouter:
		return r.openRouterAPIKey
	default:
		return r.groqAPIKey
	}
}

// ResolveCredential returns the API key a model resolves to, which may
// be empty when the key is not configured.
func (r *Resolver) ResolveCredential(model string) string {
	return r.credential(resolveProvider(model))
}

// IsAvailable reports whether a client can be built for the model. It
// never errors; an unconfigured key simply yields false.
func (r *Resolver) IsAvailable(model string) bool {
	if model == "" {
		model = DefaultModel
	}
	return r.ResolveCredential(model) != ""
}

// BuildClient constructs a chat client for the model. It returns
// ErrModelUnavailable when the resolved credential is empty; that is a
// configuration error, not a transient one.
func (r *Resolver) BuildClient(model string) (llms.Model, error) {
	if model == "" {
		model = DefaultModel
	}

	p := resolveProvider(model)
	key := r.credential(p)
	if key == "" {
		return nil, fmt.Errorf("model %q via %s: %w", model, p, ErrModelUnavailable)
	}

	client, err := openai.New(
		openai.WithToken(key),
		openai.WithModel(model),
		openai.WithBaseURL(providerBaseURLs[p]),
		openai.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s client for %q: %w", p, model, err)
	}
	return client, nil
}

// ListModels returns the advertised models with availability computed
// from the currently configured keys.
func (r *Resolver) ListModels() []ModelInfo {
	out := make([]ModelInfo, 0, len(knownModels))
	for _, model := range knownModels {
		p := resolveProvider(model)
		out = append(out, ModelInfo{
			Model:     model,
			Provider:  string(p),
			Available: r.credential(p) != "",
		})
	}
	return out
}
