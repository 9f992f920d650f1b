package lexicon

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func TestLoad(t *testing.T) {
	words, err := Load("testdata/words.txt", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"КОТ", "ДОМ", "ЁЛКА"}, words)
}

func TestLoadStripsBOM(t *testing.T) {
	words, err := Load("testdata/bom.txt", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"КОТ", "ДОМ"}, words)
}

func TestLoadLegacyEncodings(t *testing.T) {
	words, err := Load("testdata/words-cp1251.txt", Options{Encoding: "windows-1251"})
	require.NoError(t, err)
	assert.Equal(t, []string{"КОТ", "ДОМ", "ЁЖИК"}, words)

	words, err = Load("testdata/words-koi8r.txt", Options{Encoding: "KOI8-R"})
	require.NoError(t, err)
	assert.Equal(t, []string{"КОТ", "МЫШЬ"}, words)
}

func TestLoadUnknownEncoding(t *testing.T) {
	_, err := Load("testdata/words.txt", Options{Encoding: "no-such-charset"})
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "testdata/words.txt", le.Path)
}

func TestLoadYAML(t *testing.T) {
	words, err := Load("testdata/words.yaml", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"КОТ", "СОБАКА"}, words)
}

type bangNormalizer struct{}

func (bangNormalizer) Normalize(s string) string { return s + "!" }

func TestLoadCustomNormalizer(t *testing.T) {
	words, err := Load("testdata/bom.txt", Options{Normalizer: bangNormalizer{}})
	require.NoError(t, err)
	assert.Equal(t, []string{"кот!", "дом!"}, words)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("testdata/nope.txt", Options{})
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load("testdata/blank.txt", Options{})
	assert.ErrorIs(t, err, ErrEmptyLibrary)
}

type fixedIntner int

func (f fixedIntner) Intn(n int) int { return int(f) % n }

func TestPickRandom(t *testing.T) {
	words := []string{"КОТ", "ДОМ", "ЁЖ"}
	w, err := PickRandom(words, fixedIntner(2))
	require.NoError(t, err)
	assert.Equal(t, "ЁЖ", w)

	_, err = PickRandom(nil, fixedIntner(0))
	assert.ErrorIs(t, err, ErrEmptyLibrary)
}

func TestPickRandomCoversAllWords(t *testing.T) {
	rng := frand.NewCustom(make([]byte, 32), 1024, 12)
	words := []string{"КОТ", "ДОМ", "ЁЖ", "ЛЕС"}
	seen := map[string]int{}
	for range 2000 {
		w, err := PickRandom(words, rng)
		require.NoError(t, err)
		seen[w]++
	}
	assert.Len(t, seen, len(words))
	for _, w := range words {
		assert.Greater(t, seen[w], 300, w)
	}
}
