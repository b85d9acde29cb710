package generation

import (
	"context"
	"fmt"
	"sync"

	"github.com/reqgen/audiodoc/internal/config"
	"github.com/reqgen/audiodoc/internal/logger"
)

// Registry holds the lazily constructed generation Service. The backend is
// built on first use so the process starts fast; Preload forces construction
// ahead of the first request.
type Registry struct {
	cfg    config.GenerationConfig
	logger logger.Logger

	once    sync.Once
	service Service
	initErr error
}

// NewRegistry creates a Registry. No backend is contacted until Service or
// Preload is called.
func NewRegistry(cfg config.GenerationConfig, log logger.Logger) *Registry {
	return &Registry{cfg: cfg, logger: log}
}

// Service returns the configured backend, constructing it on first call.
func (r *Registry) Service() (Service, error) {
	r.once.Do(func() {
		r.service, r.initErr = r.build()
	})
	return r.service, r.initErr
}

// Preload eagerly constructs the backend so the first request pays no
// startup cost. Safe to call more than once.
func (r *Registry) Preload(ctx context.Context) error {
	r.logger.Info(ctx, "Preloading generation backend (provider=%s model=%s)", r.cfg.Provider, r.cfg.Model)
	_, err := r.Service()
	return err
}

// Generate resolves the backend lazily and delegates, so the Registry can
// stand in wherever a Service is wired before the backend is built.
func (r *Registry) Generate(ctx context.Context, prompt string, p Params) (string, error) {
	svc, err := r.Service()
	if err != nil {
		return "", err
	}
	return svc.Generate(ctx, prompt, p)
}

func (r *Registry) build() (Service, error) {
	switch r.cfg.Provider {
	case "openai":
		var key string
		if len(r.cfg.APIKeys) > 0 {
			key = r.cfg.APIKeys[0]
		}
		return NewOpenAI(r.cfg.BaseURL, key, r.cfg.Model, r.logger), nil
	case "gemini":
		if len(r.cfg.APIKeys) == 0 {
			return nil, fmt.Errorf("gemini provider requires at least one api key")
		}
		return NewGemini(r.cfg.APIKeys, r.cfg.Model, r.logger), nil
	default:
		return nil, fmt.Errorf("unknown generation provider %q", r.cfg.Provider)
	}
}
