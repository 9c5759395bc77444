package vitok

import (
	"log/slog"

	"github.com/jamesainslie/go-vitok/crf"
)

// DefaultModelPath is the conventional directory holding the trained
// segmentation model's serialized weights.
const DefaultModelPath = "models/ws_crf_vlsp2013"

// Option configures a Segmenter.
type Option func(*config)

type config struct {
	modelPath  string
	tagger     crf.Tagger
	fixedWords []string
	charNorm   bool
	tokenNorm  bool
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{
		modelPath: DefaultModelPath,
		charNorm:  true,
		tokenNorm: true,
		logger:    slog.Default(),
	}
}

// WithModelPath sets the model directory (default: DefaultModelPath).
func WithModelPath(path string) Option {
	return func(c *config) {
		if path != "" {
			c.modelPath = path
		}
	}
}

// WithTagger supplies a boundary tagger directly, bypassing model
// loading. Useful for embedding a model built in memory.
func WithTagger(t crf.Tagger) Option {
	return func(c *config) {
		c.tagger = t
	}
}

// WithFixedWords registers literal phrases that are always emitted as
// single atomic words, overriding the model's boundaries. Phrases
// that never align with token boundaries are silently ignored.
func WithFixedWords(phrases []string) Option {
	return func(c *config) {
		c.fixedWords = phrases
	}
}

// WithCharacterNormalize toggles the character pass on input text
// (default: enabled).
func WithCharacterNormalize(enabled bool) Option {
	return func(c *config) {
		c.charNorm = enabled
	}
}

// WithTokenNormalize toggles the token pass on base tokens
// (default: enabled).
func WithTokenNormalize(enabled bool) Option {
	return func(c *config) {
		c.tokenNorm = enabled
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
