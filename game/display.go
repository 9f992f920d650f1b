package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

const (
	guessedLabel = "Введенные буквы: "
	wrongLabel   = "Ошибочные буквы: "
)

// RenderMask spaces out the mask: "К * Т".
func RenderMask(mask []rune) string {
	return strings.TrimSpace(strings.Join(lo.Map(mask, func(r rune, _ int) string {
		return string(r)
	}), " "))
}

// RenderHangman returns the gallows for the given number of errors. Nothing
// is drawn before the first error; anything past MaxErrors draws the last
// stage.
func RenderHangman(errCount int) string {
	if errCount <= 0 {
		return ""
	}
	return hangmanStages[min(errCount, len(hangmanStages)-1)]
}

// RenderStatus lists the guessed and wrong letters, one line each.
func RenderStatus(guessed, wrong []rune) string {
	return guessedLabel + joinLetters(guessed) + "\n" + wrongLabel + joinLetters(wrong)
}

func joinLetters(letters []rune) string {
	sorted := slices.Clone(letters)
	slices.Sort(sorted)
	return strings.Join(lo.Map(sorted, func(r rune, _ int) string {
		return string(r)
	}), ", ")
}

// ToDisplayText renders the full state shown before each guess.
func (r *Round) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(RenderMask(r.mask))
	sb.WriteString("\n")
	sb.WriteString(ErrorTally(r.errors))
	sb.WriteString("\n\n")
	if art := RenderHangman(r.errors); art != "" {
		sb.WriteString(art)
		sb.WriteString("\n")
	}
	sb.WriteString(RenderStatus(r.Guessed(), r.Wrong()))
	sb.WriteString("\n")
	return sb.String()
}

func ErrorTally(errCount int) string {
	return fmt.Sprintf("Ошибки %d/%d", errCount, MaxErrors)
}
