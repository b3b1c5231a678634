package sentiment

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is an optional run configuration, loadable from TOML. It makes the
// otherwise-fixed constants (stop set, counting mode, emission threshold)
// explicit injected values; an empty Config means the defaults throughout.
type Config struct {
	Mode                string   `toml:"mode"`
	HybridCap           float64  `toml:"hybrid_cap"`
	NGramOrders         []int    `toml:"ngram_orders"`
	LikelihoodThreshold float64  `toml:"likelihood_threshold"`
	StopTokens          []string `toml:"stop_tokens"`
	LanguageStopwords   string   `toml:"language_stopwords"`
}

// LoadConfig reads a TOML run configuration from path.
func LoadConfig(path string) (Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	return config, nil
}

// ParseCountingMode resolves a mode name from configuration or flags.
func ParseCountingMode(name string) (CountingMode, error) {
	switch name {
	case "", "frequency":
		return FrequencyCount, nil
	case "presence":
		return PresenceCount, nil
	case "hybrid":
		return HybridCount, nil
	}
	return FrequencyCount, fmt.Errorf("unknown counting mode %q (must be frequency, presence, or hybrid)", name)
}

// TrainingConfig converts the loaded configuration into a TrainingConfig,
// filling unset fields with defaults.
func (c Config) TrainingConfig() (TrainingConfig, error) {
	training := DefaultTrainingConfig()

	mode, err := ParseCountingMode(c.Mode)
	if err != nil {
		return TrainingConfig{}, err
	}
	training.Mode = mode

	if c.HybridCap > 0 {
		training.HybridCap = c.HybridCap
	}
	if len(c.NGramOrders) > 0 {
		training.NGramOrders = c.NGramOrders
	}
	if c.LikelihoodThreshold > 0 {
		training.LikelihoodThreshold = c.LikelihoodThreshold
	}
	return training, nil
}

// TokenizerOptions returns the tokenizer options the configuration implies.
// Training and inference must both apply them for a given decision list.
func (c Config) TokenizerOptions() []TokenizerOptFunc {
	var opts []TokenizerOptFunc
	if len(c.StopTokens) > 0 {
		opts = append(opts, UsingStopTokens(c.StopTokens))
	}
	if c.LanguageStopwords != "" {
		opts = append(opts, UsingLanguageStopwords(c.LanguageStopwords))
	}
	return opts
}
