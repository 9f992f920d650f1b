package game

import (
	"errors"
	"unicode/utf8"
)

var ErrInvalidGuess = errors.New("guess must be one or more letters of the alphabet")

type GuessKind int

const (
	InvalidGuess GuessKind = iota
	LetterGuess
	WordGuess
)

// Guess is a parsed line of player input. Letter is set for a LetterGuess,
// Word for a WordGuess.
type Guess struct {
	Kind   GuessKind
	Letter rune
	Word   string
}

// Alphabet is the rule a guess is checked against.
type Alphabet interface {
	IsValidGuessChar(r rune) bool
	Normalize(s string) string
}

type Validator struct {
	alph Alphabet
}

func NewValidator(alph Alphabet) *Validator {
	return &Validator{alph: alph}
}

// Parse normalizes a raw input line and classifies it. Empty lines and
// lines with any character outside the alphabet are ErrInvalidGuess.
func (v *Validator) Parse(raw string) (Guess, error) {
	s := v.alph.Normalize(raw)
	if s == "" {
		return Guess{Kind: InvalidGuess}, ErrInvalidGuess
	}
	for _, r := range s {
		if !v.alph.IsValidGuessChar(r) {
			return Guess{Kind: InvalidGuess}, ErrInvalidGuess
		}
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return Guess{Kind: LetterGuess, Letter: r}, nil
	}
	return Guess{Kind: WordGuess, Word: s}, nil
}
