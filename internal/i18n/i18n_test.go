package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalogsLoad(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)
	require.Equal(t, English, p.Language())
	require.Equal(t, "Farm Dashboard", p.Translate("dashboard.title"))
}

func TestTranslateFallsBackToEnglishThenKey(t *testing.T) {
	p := NewProviderFromCatalogs(map[Language]map[string]string{
		English: {"a": "A", "b": "B"},
		Hindi:   {"a": "ए"},
	})
	require.NoError(t, p.SetLanguage("hindi"))
	require.Equal(t, "ए", p.Translate("a"))
	require.Equal(t, "B", p.Translate("b"))
	require.Equal(t, "missing.key", p.Translate("missing.key"))
}

func TestSetLanguageUnknownKeepsCurrent(t *testing.T) {
	p := NewProviderFromCatalogs(map[Language]map[string]string{English: {}})
	require.NoError(t, p.SetLanguage("Marathi"))
	err := p.SetLanguage("Klingon")
	require.True(t, errors.Is(err, ErrUnknownLanguage))
	require.Equal(t, Marathi, p.Language())
}

func TestEveryCatalogKeyExistsInEnglish(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)
	for _, lang := range Languages() {
		for key := range p.catalogs[lang] {
			_, ok := p.catalogs[English][key]
			require.Truef(t, ok, "%s key %q missing from English catalog", lang, key)
		}
	}
}
