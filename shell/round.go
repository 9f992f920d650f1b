package shell

import (
	"errors"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/domino14/hangman/game"
)

type roundState int

const (
	statePrompting roundState = iota
	stateValidating
	stateApplying
	stateChecking
	stateWon
	stateLost
)

func (s roundState) String() string {
	switch s {
	case statePrompting:
		return "prompting"
	case stateValidating:
		return "validating"
	case stateApplying:
		return "applying"
	case stateChecking:
		return "checking"
	case stateWon:
		return "won"
	case stateLost:
		return "lost"
	}
	return "unknown"
}

// playRound runs one round for word and returns stateWon or stateLost.
// The only error it returns is from reading input.
func (sc *ShellController) playRound(word string) (roundState, error) {
	r := game.NewRound(word, sc.placeholder)
	log.Debug().Str("word", word).Msg("round-started")
	if sc.showWord {
		sc.showMessage(msgGuessWord + " " + word)
	} else {
		sc.showMessage(msgGuessWord)
	}
	sc.showMessage("")

	state := statePrompting
	var guess game.Guess
	for {
		switch state {
		case statePrompting:
			sc.showMessage(r.ToDisplayText())
			sc.showMessage(msgEnterGuess)
			state = stateValidating

		case stateValidating:
			g, err := sc.readGuess()
			if err != nil {
				return state, err
			}
			guess = g
			state = stateApplying

		case stateApplying:
			sc.applyGuess(r, guess)
			state = stateChecking

		case stateChecking:
			switch {
			case r.IsLost():
				sc.showMessage(game.RenderHangman(r.Errors()))
				sc.showMessage(msgLost + r.Word())
				state = stateLost
			case r.IsSolved():
				sc.showMessage(msgWon + r.Word())
				state = stateWon
			default:
				state = statePrompting
			}

		case stateWon, stateLost:
			return state, nil
		}
	}
}

// readGuess reads lines until one parses as a guess. There is no limit on
// the number of attempts; bad input never costs the player anything.
func (sc *ShellController) readGuess() (game.Guess, error) {
	return retry.DoWithData(
		func() (game.Guess, error) {
			line, err := sc.readLine()
			if err != nil {
				return game.Guess{}, err
			}
			return sc.validator.Parse(line)
		},
		retry.Attempts(0),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, game.ErrInvalidGuess)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Debug().Uint("attempt", n).Err(err).Msg("invalid-guess")
			sc.showMessage(fmt.Sprintf(msgInvalidGuess, sc.alph.Description()))
		}),
	)
}

func (sc *ShellController) applyGuess(r *game.Round, guess game.Guess) {
	switch guess.Kind {
	case game.LetterGuess:
		res := r.ApplyLetter(guess.Letter)
		log.Debug().Str("letter", string(guess.Letter)).Stringer("result", res).
			Int("errors", r.Errors()).Msg("letter-guess")
		switch res {
		case game.AlreadyGuessed:
			sc.showMessage(msgAlreadyGuessed)
		case game.RepeatedMiss:
			sc.showMessage(msgRepeatedMiss)
		case game.Miss:
			sc.showMessage(msgNoSuchLetter)
			sc.showMessage("")
		}
	case game.WordGuess:
		ok := r.ApplyFullWord(guess.Word)
		log.Debug().Str("word", guess.Word).Bool("correct", ok).
			Int("errors", r.Errors()).Msg("word-guess")
		if !ok {
			sc.showMessage(msgWrongWord)
		}
	}
}
