package sentiment

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	content := `
mode = "hybrid"
hybrid_cap = 3.0
ngram_orders = [1]
likelihood_threshold = 0.5
stop_tokens = ["a", "the"]
`
	path := filepath.Join(t.TempDir(), "run.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	training, err := config.TrainingConfig()
	if err != nil {
		t.Fatalf("TrainingConfig: %v", err)
	}
	if training.Mode != HybridCount {
		t.Errorf("mode = %v, want %v", training.Mode, HybridCount)
	}
	if training.HybridCap != 3 {
		t.Errorf("hybrid cap = %v, want 3", training.HybridCap)
	}
	if len(training.NGramOrders) != 1 || training.NGramOrders[0] != 1 {
		t.Errorf("ngram orders = %v, want [1]", training.NGramOrders)
	}
	if training.LikelihoodThreshold != 0.5 {
		t.Errorf("threshold = %v, want 0.5", training.LikelihoodThreshold)
	}
	if len(config.TokenizerOptions()) != 1 {
		t.Errorf("tokenizer options = %d, want 1", len(config.TokenizerOptions()))
	}
}

func TestConfigDefaults(t *testing.T) {
	training, err := Config{}.TrainingConfig()
	if err != nil {
		t.Fatalf("TrainingConfig: %v", err)
	}
	defaults := DefaultTrainingConfig()
	if training.Mode != defaults.Mode || training.HybridCap != defaults.HybridCap {
		t.Errorf("empty config = %+v, want defaults %+v", training, defaults)
	}
	if len(Config{}.TokenizerOptions()) != 0 {
		t.Error("empty config should imply no tokenizer options")
	}
}

func TestParseCountingMode(t *testing.T) {
	tests := []struct {
		name     string
		expected CountingMode
		wantErr  bool
		desc     string
	}{
		{"frequency", FrequencyCount, false, "Frequency by name"},
		{"presence", PresenceCount, false, "Presence by name"},
		{"hybrid", HybridCount, false, "Hybrid by name"},
		{"", FrequencyCount, false, "Empty defaults to frequency"},
		{"tfidf", FrequencyCount, true, "Unknown mode rejected"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			mode, err := ParseCountingMode(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCountingMode(%q): %v", tt.name, err)
			}
			if mode != tt.expected {
				t.Errorf("mode = %v, want %v", mode, tt.expected)
			}
		})
	}
}
