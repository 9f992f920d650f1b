// Package lexicon loads the list of words a round's secret is drawn from.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// ErrEmptyLibrary is returned when there are no words to choose from.
var ErrEmptyLibrary = errors.New("word list is empty")

// LoadError means the word list could not be read at all.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load word list %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Normalizer brings a raw word into the form used for play. An
// *alphabet.Alphabet is one.
type Normalizer interface {
	Normalize(s string) string
}

type defaultNormalizer struct{}

func (defaultNormalizer) Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(norm.NFC.String(s)))
}

type Options struct {
	// Encoding is an IANA charset name such as windows-1251 or koi8-r.
	// Empty means UTF-8.
	Encoding   string
	Normalizer Normalizer
}

type yamlWordList struct {
	Words []string `yaml:"words"`
}

// Load reads a word list. Plain files hold one word per line; files with a
// .yaml or .yml extension hold a `words:` sequence. Blank lines are skipped
// and every word is normalized.
func Load(path string, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	r, err := decoder(f, opts.Encoding)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var raw []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err = readYAML(r)
	default:
		raw, err = readLines(r)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	normalizer := opts.Normalizer
	if normalizer == nil {
		normalizer = defaultNormalizer{}
	}
	words := lo.FilterMap(raw, func(w string, _ int) (string, bool) {
		w = normalizer.Normalize(w)
		return w, w != ""
	})
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyLibrary)
	}
	log.Debug().Str("path", path).Int("words", len(words)).Msg("loaded-word-list")
	return words, nil
}

func decoder(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return r, nil
	}
	enc, err := ianaindex.IANA.Encoding(encoding)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("encoding %s is not supported", encoding)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func readYAML(r io.Reader) ([]string, error) {
	dat, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var wl yamlWordList
	if err := yaml.Unmarshal(dat, &wl); err != nil {
		return nil, err
	}
	return wl.Words, nil
}

// Intner is a source of uniform random integers in [0, n). Both
// *frand.RNG and *rand.Rand satisfy it.
type Intner interface {
	Intn(n int) int
}

// PickRandom chooses one word uniformly at random.
func PickRandom(words []string, rng Intner) (string, error) {
	if len(words) == 0 {
		return "", ErrEmptyLibrary
	}
	return words[rng.Intn(len(words))], nil
}
