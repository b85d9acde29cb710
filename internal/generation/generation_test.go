package generation

import (
	"context"
	"sync"
	"testing"

	"github.com/reqgen/audiodoc/internal/config"
	"github.com/reqgen/audiodoc/internal/logger"
)

func TestBeamsForQuality(t *testing.T) {
	tests := []struct {
		quality string
		want    int
	}{
		{"fast", 2},
		{"medium", 4},
		{"high", 6},
		{"best", 10},
		{"", 4},
		{"turbo", 4},
	}
	for _, tt := range tests {
		if got := BeamsForQuality(tt.quality); got != tt.want {
			t.Errorf("BeamsForQuality(%q) = %d, want %d", tt.quality, got, tt.want)
		}
	}
}

func TestRegistryBuildsOnce(t *testing.T) {
	log := logger.New("error")

	r := NewRegistry(config.GenerationConfig{
		Provider: "openai",
		Model:    "flan-t5-large",
		APIKeys:  []string{"test-key"},
	}, log)

	first, err := r.Service()
	if err != nil {
		t.Fatalf("Service() error = %v", err)
	}
	second, err := r.Service()
	if err != nil {
		t.Fatalf("Service() second call error = %v", err)
	}
	if first != second {
		t.Error("Service() should return the same instance on repeated calls")
	}
}

func TestRegistryUnknownProvider(t *testing.T) {
	log := logger.New("error")

	r := NewRegistry(config.GenerationConfig{Provider: "llamafile"}, log)
	if _, err := r.Service(); err == nil {
		t.Error("Service() should fail for unknown provider")
	}
}

func TestRegistryGeminiRequiresKeys(t *testing.T) {
	log := logger.New("error")

	r := NewRegistry(config.GenerationConfig{Provider: "gemini", Model: "gemini-2.5-flash"}, log)
	if _, err := r.Service(); err == nil {
		t.Error("Service() should fail when gemini has no api keys")
	}
}

func TestGeminiKeyRotationConcurrent(t *testing.T) {
	log := logger.New("error")
	g := NewGemini([]string{"k1", "k2", "k3"}, "gemini-2.5-flash", log).(*implGemini)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				g.rotateKey()
				if idx, key := g.key(); key == "" || idx < 0 || idx >= len(g.apiKeys) {
					t.Errorf("key() = (%d, %q), out of range", idx, key)
					return
				}
			}
		}()
	}
	wg.Wait()

	if idx, _ := g.key(); idx < 0 || idx >= len(g.apiKeys) {
		t.Errorf("currentKey = %d, out of range", idx)
	}
}

func TestRegistryPreload(t *testing.T) {
	log := logger.New("error")

	r := NewRegistry(config.GenerationConfig{
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
		APIKeys:  []string{"k1", "k2"},
	}, log)

	if err := r.Preload(context.Background()); err != nil {
		t.Fatalf("Preload() error = %v", err)
	}
	svc, err := r.Service()
	if err != nil || svc == nil {
		t.Fatalf("Service() after Preload = (%v, %v)", svc, err)
	}
}
