package alphabet

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	CyrillicName = "cyrillic"
	LatinName    = "latin"

	cyrillicLetters = "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"
	latinLetters    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var ErrUnknownAlphabet = errors.New("unknown alphabet")

// Alphabet defines the set of letters a guess may be made of. Letters are
// stored in their uppercase form.
type Alphabet struct {
	name        string
	description string
	vals        map[rune]struct{}
	tag         language.Tag
}

func newAlphabet(name, description, letters string, tag language.Tag) *Alphabet {
	a := &Alphabet{
		name:        name,
		description: description,
		vals:        make(map[rune]struct{}),
		tag:         tag,
	}
	upper := cases.Upper(tag)
	for _, r := range norm.NFC.String(letters) {
		a.vals[r] = struct{}{}
		for _, u := range upper.String(string(r)) {
			a.vals[u] = struct{}{}
		}
	}
	return a
}

// Cyrillic is the 33-letter Russian alphabet, Ё included.
func Cyrillic() *Alphabet {
	return newAlphabet(CyrillicName, "русские буквы", cyrillicLetters, language.Russian)
}

// Latin is the 26-letter basic Latin alphabet.
func Latin() *Alphabet {
	return newAlphabet(LatinName, "латинские буквы", latinLetters, language.English)
}

// Custom builds an alphabet out of the given letters. Case mapping is
// language-neutral.
func Custom(name, letters string) (*Alphabet, error) {
	if strings.TrimSpace(letters) == "" {
		return nil, fmt.Errorf("alphabet %q: no letters given", name)
	}
	letters = strings.Join(strings.Fields(letters), "")
	return newAlphabet(name, "буквы "+letters, letters, language.Und), nil
}

// ByName returns one of the built-in alphabets, or a custom one if letters
// is not empty.
func ByName(name, letters string) (*Alphabet, error) {
	if letters != "" {
		return Custom(name, letters)
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case CyrillicName, "russian", "ru":
		return Cyrillic(), nil
	case LatinName, "english", "en":
		return Latin(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlphabet, name)
}

func (a *Alphabet) Name() string {
	return a.name
}

// Description is a human-readable name for the letters, used in prompts
// such as "введите только русские буквы".
func (a *Alphabet) Description() string {
	return a.description
}

// IsValidGuessChar reports whether r is a letter of this alphabet.
func (a *Alphabet) IsValidGuessChar(r rune) bool {
	_, ok := a.vals[r]
	return ok
}

// Normalize composes s (so that a decomposed Ё becomes one rune), trims
// surrounding whitespace and uppercases it.
func (a *Alphabet) Normalize(s string) string {
	return cases.Upper(a.tag).String(strings.TrimSpace(norm.NFC.String(s)))
}

// Letters returns the uppercase letters sorted by code point.
func (a *Alphabet) Letters() []rune {
	letters := make([]rune, 0, len(a.vals))
	for r := range a.vals {
		if cases.Upper(a.tag).String(string(r)) == string(r) {
			letters = append(letters, r)
		}
	}
	slices.Sort(letters)
	return letters
}
