// Package game holds the state of a single hangman round: the secret word,
// what has been revealed of it, and the guesses made so far.
package game

import (
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	// MaxErrors is the number of wrong guesses that hangs the man. It is
	// also the index of the last stage in the gallows art.
	MaxErrors = 6

	DefaultPlaceholder = '*'
)

// RevealResult is the outcome of a single-letter guess.
type RevealResult int

const (
	Hit RevealResult = iota
	Miss
	RepeatedMiss
	AlreadyGuessed
)

func (r RevealResult) String() string {
	switch r {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case RepeatedMiss:
		return "repeated-miss"
	case AlreadyGuessed:
		return "already-guessed"
	}
	return "unknown"
}

// Round is the state of one playthrough. It is owned by a single game loop
// and is not safe for concurrent use.
type Round struct {
	word        []rune
	mask        []rune
	placeholder rune
	guessed     map[rune]struct{}
	wrong       map[rune]struct{}
	errors      int
}

// NewRound starts a round for word, which is expected to already be
// normalized (uppercase). The mask starts fully hidden.
func NewRound(word string, placeholder rune) *Round {
	w := []rune(word)
	return &Round{
		word:        w,
		mask:        slices.Repeat([]rune{placeholder}, len(w)),
		placeholder: placeholder,
		guessed:     make(map[rune]struct{}),
		wrong:       make(map[rune]struct{}),
	}
}

// ApplyLetter reveals every hidden position holding letter. A letter that
// already missed is a RepeatedMiss and one that already hit is
// AlreadyGuessed; neither changes any state. A first-time miss costs one
// error.
func (r *Round) ApplyLetter(letter rune) RevealResult {
	if _, ok := r.wrong[letter]; ok {
		return RepeatedMiss
	}
	if _, ok := r.guessed[letter]; ok {
		return AlreadyGuessed
	}
	r.guessed[letter] = struct{}{}

	revealed := 0
	for i, c := range r.word {
		if c == letter && r.mask[i] == r.placeholder {
			r.mask[i] = c
			revealed++
		}
	}
	log.Debug().Str("letter", string(letter)).Int("revealed", revealed).Msg("apply-letter")
	if revealed > 0 {
		return Hit
	}
	r.wrong[letter] = struct{}{}
	r.addError()
	return Miss
}

// ApplyFullWord reports whether candidate is the secret word. candidate must
// be normalized the same way as the word. A correct guess reveals the whole
// word. Every wrong guess costs an error, even one that was already tried.
func (r *Round) ApplyFullWord(candidate string) bool {
	if candidate == string(r.word) {
		copy(r.mask, r.word)
		return true
	}
	r.addError()
	return false
}

func (r *Round) addError() {
	if r.errors < MaxErrors {
		r.errors++
	}
}

func (r *Round) IsSolved() bool {
	return !slices.Contains(r.mask, r.placeholder) || string(r.mask) == string(r.word)
}

func (r *Round) IsLost() bool {
	return r.errors >= MaxErrors
}

func (r *Round) Word() string {
	return string(r.word)
}

// Mask returns a copy of the current mask.
func (r *Round) Mask() []rune {
	return slices.Clone(r.mask)
}

func (r *Round) Placeholder() rune {
	return r.placeholder
}

func (r *Round) Errors() int {
	return r.errors
}

// Guessed returns every letter submitted as a single-letter guess, sorted.
func (r *Round) Guessed() []rune {
	return sortedLetters(r.guessed)
}

// Wrong returns the guessed letters that revealed nothing, sorted.
func (r *Round) Wrong() []rune {
	return sortedLetters(r.wrong)
}

func sortedLetters(set map[rune]struct{}) []rune {
	letters := lo.Keys(set)
	slices.Sort(letters)
	return letters
}
