package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/hangman/alphabet"
	"github.com/domino14/hangman/config"
	"github.com/domino14/hangman/lexicon"
	"github.com/domino14/hangman/shell"
)

var (
	GitVersion string
)

const (
	ExitOK             = 0
	ExitStartupFailure = 1
	ExitSessionFailure = 2
)

//go:embed banner.txt
var banner string

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func run() int {
	// Relative data paths are resolved against the executable's directory
	// if they don't exist relative to the working directory.
	ex, err := os.Executable()
	if err != nil {
		log.Error().Err(err).Msg("could not find executable path")
		return ExitStartupFailure
	}
	exPath := filepath.Dir(ex)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		setupLogging(false)
		log.Error().Err(err).Msg("could not load config")
		return ExitStartupFailure
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))
	if f := cfg.ConfigFileUsed(); f != "" {
		log.Debug().Str("file", f).Msg("read-config-file")
	} else {
		log.Debug().Msg("no config file found, using flags and environment")
	}
	cfg.AdjustRelativePaths(exPath)
	log.Debug().Msgf("Loaded config:\n%s", cfg.SanitizedSettings())

	alph, err := alphabet.ByName(cfg.GetString(config.ConfigAlphabet),
		cfg.GetString(config.ConfigAlphabetLetters))
	if err != nil {
		log.Error().Err(err).Msg("bad alphabet")
		return ExitStartupFailure
	}
	words, err := lexicon.Load(cfg.GetString(config.ConfigWordsPath), lexicon.Options{
		Encoding:   cfg.GetString(config.ConfigWordsEncoding),
		Normalizer: alph,
	})
	if err != nil {
		log.Error().Err(err).Msg("could not load word list")
		return ExitStartupFailure
	}
	log.Debug().Int("words", len(words)).Str("alphabet", alph.Name()).Msg("word-list-ready")

	l, err := shell.NewReadline()
	if err != nil {
		log.Error().Err(err).Msg("could not open terminal")
		return ExitStartupFailure
	}
	defer l.Close()

	sc, err := shell.NewShellController(cfg, words, l, l.Stdout(), nil)
	if err != nil {
		log.Error().Err(err).Msg("could not start session")
		return ExitStartupFailure
	}

	fmt.Fprintln(l.Stdout(), banner)
	if GitVersion != "" {
		fmt.Fprintln(l.Stdout(), GitVersion)
	}

	if err := sc.Loop(); err != nil {
		log.Error().Err(err).Msg("session ended with an error")
		return ExitSessionFailure
	}
	return ExitOK
}

func main() {
	os.Exit(run())
}
