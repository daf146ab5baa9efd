// Package i18n holds the translation catalogs and the process-wide current
// language consumed by every screen.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

type Language string

const (
	English Language = "English"
	Hindi   Language = "Hindi"
	Marathi Language = "Marathi"
)

var ErrUnknownLanguage = errors.New("unknown language")

// Languages returns the supported languages in display order.
func Languages() []Language {
	return []Language{English, Hindi, Marathi}
}

// Translator is the lookup surface screens depend on.
type Translator interface {
	Translate(key string) string
	Language() Language
}

type Provider struct {
	current  Language
	catalogs map[Language]map[string]string
}

// NewProvider loads the embedded catalogs and starts in English.
func NewProvider() (*Provider, error) {
	p := &Provider{current: English, catalogs: make(map[Language]map[string]string, 3)}
	for _, lang := range Languages() {
		name := "catalogs/" + strings.ToLower(string(lang)) + ".yaml"
		data, err := catalogFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", lang, err)
		}
		cat, err := parseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", lang, err)
		}
		p.catalogs[lang] = cat
	}
	return p, nil
}

// NewProviderFromCatalogs builds a provider over caller-supplied catalogs.
func NewProviderFromCatalogs(catalogs map[Language]map[string]string) *Provider {
	p := &Provider{current: English, catalogs: make(map[Language]map[string]string, len(catalogs))}
	for lang, cat := range catalogs {
		p.catalogs[lang] = cat
	}
	return p
}

func parseCatalog(data []byte) (map[string]string, error) {
	out := map[string]string{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Provider) Language() Language { return p.current }

// SetLanguage switches the current language. Names match case-insensitively;
// unknown names leave the language unchanged.
func (p *Provider) SetLanguage(name string) error {
	lang, ok := ParseLanguage(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	p.current = lang
	return nil
}

// Translate falls back from the current language to English, then to the key.
func (p *Provider) Translate(key string) string {
	if v, ok := p.catalogs[p.current][key]; ok && v != "" {
		return v
	}
	if v, ok := p.catalogs[English][key]; ok && v != "" {
		return v
	}
	return key
}

func ParseLanguage(name string) (Language, bool) {
	name = strings.TrimSpace(name)
	for _, lang := range Languages() {
		if strings.EqualFold(name, string(lang)) {
			return lang, true
		}
	}
	return "", false
}
