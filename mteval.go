// Package mteval is a small machine translation workbench: a phrase-based
// beam-search decoder, a word-for-word baseline, an optional external decoder
// bridge, and a BLEU scorer for judging the output.
package mteval

import (
	"context"
	"fmt"

	"github.com/ieee0824/mteval-go/bleu"
	"github.com/ieee0824/mteval-go/decoder"
	"github.com/ieee0824/mteval-go/dictionary"
	"github.com/ieee0824/mteval-go/language"
	"github.com/ieee0824/mteval-go/moses"
	"github.com/ieee0824/mteval-go/phrase"
	"github.com/ieee0824/mteval-go/sample"
	"github.com/ieee0824/mteval-go/tokenize"
)

// System is the top-level translation and evaluation pipeline.
type System struct {
	Table    *phrase.Table
	LM       *language.Model
	Dict     *dictionary.Dictionary
	DecCfg   decoder.Config
	BLEUOpts bleu.Options
	External moses.Translator // optional; nil means local decoding only

	dec *decoder.Decoder
}

// Option configures a System.
type Option func(*System)

// WithDecoderConfig sets custom beam-search parameters.
func WithDecoderConfig(cfg decoder.Config) Option {
	return func(s *System) {
		s.DecCfg = cfg
	}
}

// WithBLEUOptions sets custom scoring parameters.
func WithBLEUOptions(opts bleu.Options) Option {
	return func(s *System) {
		s.BLEUOpts = opts
	}
}

// WithExternalTranslator attaches an external decoder tried before the
// built-in one.
func WithExternalTranslator(t moses.Translator) Option {
	return func(s *System) {
		s.External = t
	}
}

// WithDictionary sets the dictionary backing the word-for-word baseline.
func WithDictionary(d *dictionary.Dictionary) Option {
	return func(s *System) {
		s.Dict = d
	}
}

// NewSystem creates a System from a phrase table file and a language model
// file.
func NewSystem(tablePath, lmPath string, opts ...Option) (*System, error) {
	table, err := phrase.LoadFile(tablePath)
	if err != nil {
		return nil, fmt.Errorf("load phrase table: %w", err)
	}
	lm, err := language.LoadFile(lmPath)
	if err != nil {
		return nil, fmt.Errorf("load language model: %w", err)
	}
	return NewSystemFromModels(table, lm, opts...), nil
}

// NewSystemFromModels creates a System from pre-loaded models.
func NewSystemFromModels(table *phrase.Table, lm *language.Model, opts ...Option) *System {
	s := &System{
		Table:    table,
		LM:       lm,
		DecCfg:   decoder.DefaultConfig(),
		BLEUOpts: bleu.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dec = decoder.New(table, lm, s.DecCfg)
	return s
}

// NewSampleSystem creates a System backed by the built-in English-to-French
// models.
func NewSampleSystem(opts ...Option) *System {
	opts = append([]Option{WithDictionary(sample.Dict())}, opts...)
	return NewSystemFromModels(sample.Table(), sample.LanguageModel(), opts...)
}

// Translate translates a sentence. When an external translator is attached
// and available it is tried first; any failure falls back to the built-in
// beam decoder.
func (s *System) Translate(ctx context.Context, text string) string {
	if s.External != nil && s.External.Available() {
		if out, err := s.External.Translate(ctx, text); err == nil {
			return out
		}
	}
	return s.dec.Translate(text)
}

// TranslateGreedy translates with the greedy longest-match decoder.
func (s *System) TranslateGreedy(text string) string {
	return s.dec.TranslateGreedy(text)
}

// TranslateWithScore translates with the beam decoder and returns the full
// scored result.
func (s *System) TranslateWithScore(text string) *decoder.Result {
	return s.dec.Decode(tokenize.Clean(text))
}

// TranslateWordByWord runs the dictionary baseline. It returns the input
// lowercased when no dictionary is attached.
func (s *System) TranslateWordByWord(text string) string {
	if s.Dict == nil {
		d := dictionary.New()
		return d.Translate(text)
	}
	return s.Dict.Translate(text)
}

// Evaluate translates a source sentence and scores it against the references.
func (s *System) Evaluate(ctx context.Context, source string, references []string) (string, *bleu.Result, error) {
	out := s.Translate(ctx, source)
	res, err := bleu.Score(out, references, s.BLEUOpts)
	if err != nil {
		return out, nil, err
	}
	return out, res, nil
}

// EvaluateCorpus translates every source sentence and computes corpus-level
// BLEU over the whole set.
func (s *System) EvaluateCorpus(ctx context.Context, sources []string, references [][]string) ([]string, *bleu.CorpusResult, error) {
	outputs := make([]string, len(sources))
	for i, src := range sources {
		outputs[i] = s.Translate(ctx, src)
	}
	res, err := bleu.ScoreCorpus(outputs, references, s.BLEUOpts)
	if err != nil {
		return outputs, nil, err
	}
	return outputs, res, nil
}
