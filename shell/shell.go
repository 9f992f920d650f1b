package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"lukechampine.com/frand"

	"github.com/domino14/hangman/alphabet"
	"github.com/domino14/hangman/config"
	"github.com/domino14/hangman/game"
	"github.com/domino14/hangman/lexicon"
)

// errEndOfInput means the player closed the input (EOF or Ctrl-C on an
// empty line). The session treats it as a request to stop.
var errEndOfInput = errors.New("end of input")

// LineReader is the input side of the terminal. A *readline.Instance is
// one.
type LineReader interface {
	Readline() (string, error)
}

// ShellController runs a session: round after round until the player
// declines to play again.
type ShellController struct {
	l   LineReader
	out io.Writer

	words       []string
	rng         lexicon.Intner
	alph        *alphabet.Alphabet
	validator   *game.Validator
	placeholder rune
	stopWords   []string
	fold        cases.Caser
	showWord    bool
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewReadline creates the terminal line reader used by the real game.
// History is off; the secret word's letters shouldn't be one arrow key away
// in the next round.
func NewReadline() (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		HistoryLimit:    -1,

		FuncFilterInputRune: filterInput,
	})
}

// NewShellController builds a session over an already-loaded word list.
// If rng is nil a fresh frand generator is used.
func NewShellController(cfg *config.Config, words []string, l LineReader,
	out io.Writer, rng lexicon.Intner) (*ShellController, error) {

	if len(words) == 0 {
		return nil, lexicon.ErrEmptyLibrary
	}
	alph, err := alphabet.ByName(cfg.GetString(config.ConfigAlphabet),
		cfg.GetString(config.ConfigAlphabetLetters))
	if err != nil {
		return nil, err
	}
	placeholder, err := cfg.Placeholder()
	if err != nil {
		return nil, err
	}
	// A placeholder that is also a letter would make hidden and revealed
	// positions indistinguishable.
	if lo.SomeBy([]rune(alph.Normalize(string(placeholder))), alph.IsValidGuessChar) {
		return nil, fmt.Errorf("%w: %q is a letter of the %s alphabet",
			config.ErrBadPlaceholder, placeholder, alph.Name())
	}
	stopWords, err := cfg.StopWords()
	if err != nil {
		return nil, fmt.Errorf("bad %s setting: %w", config.ConfigStopWords, err)
	}
	if rng == nil {
		rng = frand.New()
	}
	fold := cases.Fold()
	return &ShellController{
		l:           l,
		out:         out,
		words:       words,
		rng:         rng,
		alph:        alph,
		validator:   game.NewValidator(alph),
		placeholder: placeholder,
		stopWords: lo.Map(stopWords, func(w string, _ int) string {
			return fold.String(w)
		}),
		fold:     fold,
		showWord: cfg.GetBool(config.ConfigShowWord),
	}, nil
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

// showPrompt writes msg without a trailing newline.
func (sc *ShellController) showPrompt(msg string) {
	io.WriteString(sc.out, msg)
}

// readLine blocks for one line of input. Ctrl-C on a partially typed line
// discards it and reads again.
func (sc *ShellController) readLine() (string, error) {
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return "", errEndOfInput
			}
			continue
		} else if err == io.EOF {
			return "", errEndOfInput
		} else if err != nil {
			return "", err
		}
		return line, nil
	}
}

// Loop plays rounds until the player answers the replay prompt with a stop
// word or closes the input. It only returns an error for conditions that
// are not the player's doing.
func (sc *ShellController) Loop() error {
	usage(sc.out)
	for {
		word, err := lexicon.PickRandom(sc.words, sc.rng)
		if err != nil {
			return err
		}
		state, err := sc.playRound(word)
		if errors.Is(err, errEndOfInput) {
			log.Debug().Msg("input closed during round")
			break
		}
		if err != nil {
			return err
		}
		log.Debug().Str("word", word).Stringer("outcome", state).Msg("round-finished")

		stop, err := sc.askReplay()
		if errors.Is(err, errEndOfInput) {
			break
		}
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}
	sc.showMessage(msgFarewell)
	log.Debug().Msgf("Exiting readline loop...")
	return nil
}

func (sc *ShellController) askReplay() (bool, error) {
	sc.showPrompt(msgPlayAgain)
	answer, err := sc.readLine()
	if err != nil {
		return false, err
	}
	return sc.isStopWord(answer), nil
}

func (sc *ShellController) isStopWord(answer string) bool {
	return lo.Contains(sc.stopWords, sc.fold.String(sc.alph.Normalize(answer)))
}
