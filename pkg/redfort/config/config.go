// Package config loads the YAML resources the dashboard needs: the app
// configuration, the stopword list, and the opinion lexicon.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/corpuslab/redfort/pkg/redfort/internalerr"
)

// Config is the application configuration.
type Config struct {
	// CorpusPath points at the corpus CSV. CorpusDB, when set, takes
	// precedence and names a SQLite database produced by redfort-import.
	CorpusPath string `yaml:"corpus_path"`
	CorpusDB   string `yaml:"corpus_db"`

	StoplistPath string `yaml:"stoplist"`
	LexiconPath  string `yaml:"lexicon"`

	ListenAddr string `yaml:"listen_addr"`
}

// Load reads the application config from a YAML file and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8600"
	}
	if cfg.CorpusPath == "" && cfg.CorpusDB == "" {
		return nil, fmt.Errorf("%w: corpus_path or corpus_db required", internalerr.ErrInvalidConfig)
	}
	if cfg.StoplistPath == "" {
		return nil, fmt.Errorf("%w: stoplist required", internalerr.ErrInvalidConfig)
	}
	if cfg.LexiconPath == "" {
		return nil, fmt.Errorf("%w: lexicon required", internalerr.ErrInvalidConfig)
	}

	return &cfg, nil
}

// Stoplist is the stopword list file.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

// OpinionLexicon is the sentiment word list file.
type OpinionLexicon struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// LoadOpinionLexicon loads the positive and negative word lists from a YAML
// file.
func LoadOpinionLexicon(path string) (*OpinionLexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lex OpinionLexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, err
	}

	return &lex, nil
}
