package main

import (
	"fmt"
	"log/slog"

	"github.com/kerem-kaynak/text-transformer/internal/config"
	"github.com/kerem-kaynak/text-transformer/pkg/analysis"
	"github.com/kerem-kaynak/text-transformer/pkg/breaker"
	"github.com/kerem-kaynak/text-transformer/pkg/casemap"
	"github.com/kerem-kaynak/text-transformer/pkg/tokenizer"
)

// openDictionary loads the configured component list. It returns nil when
// no dictionary is configured.
func openDictionary(cfg config.Config) (*breaker.Dictionary, error) {
	if cfg.Dictionary.Path == "" {
		return nil, nil
	}
	dict, err := breaker.NewDictionary(cfg.Dictionary.Path)
	if err != nil {
		return nil, err
	}
	slog.Debug("dictionary loaded",
		slog.String("path", cfg.Dictionary.Path),
		slog.Int("words", dict.WordCount()))
	return dict, nil
}

func newTokenizer(cfg config.Config, dict *breaker.Dictionary) (*tokenizer.Tokenizer, error) {
	conv, err := casemap.Parse(cfg.Tokenizer.Language)
	if err != nil {
		return nil, fmt.Errorf("tokenizer language: %w", err)
	}

	var word tokenizer.BreakOracle = breaker.NewWord()
	if dict != nil {
		if cfg.Dictionary.Cache {
			word = breaker.NewCompound(breaker.NewWord(), dict)
		} else {
			word = breaker.NewCompoundNoCache(breaker.NewWord(), dict)
		}
	}

	return tokenizer.New(word, breaker.NewLine(), conv,
		tokenizer.WithLogger(slog.Default()),
		tokenizer.WithMaxBufferSize(cfg.Tokenizer.MaxBufferSize),
	), nil
}

func newAnalyzer(cfg config.Config, dict *breaker.Dictionary) (*analysis.Analyzer, error) {
	stemLanguage := ""
	if cfg.Analysis.Stem {
		stemLanguage = cfg.Analysis.StemLanguage
	}
	n, err := analysis.NewNormalizer(stemLanguage)
	if err != nil {
		return nil, err
	}

	opts := []analysis.Option{analysis.WithLogger(slog.Default())}
	if dict != nil {
		opts = append(opts, analysis.WithCompounds(dict, cfg.Dictionary.Cache))
	}
	return analysis.New(n, opts...), nil
}
