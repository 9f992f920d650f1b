package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	ConfigWordsPath       = "words-path"
	ConfigWordsEncoding   = "words-encoding"
	ConfigAlphabet        = "alphabet"
	ConfigAlphabetLetters = "alphabet-letters"
	ConfigStopWords       = "stop-words"
	ConfigPlaceholder     = "placeholder"
	ConfigShowWord        = "show-word"
	ConfigDebug           = "debug"
)

const (
	defaultWordsPath   = "./data/words.txt"
	defaultAlphabet    = "cyrillic"
	defaultStopWords   = "нет стоп"
	defaultPlaceholder = "*"
)

var ErrBadPlaceholder = errors.New("placeholder must be exactly one character")

// Config is a thin wrapper around a viper instance. Flags take precedence
// over environment variables (HANGMAN_WORDS_PATH etc.), which take
// precedence over ~/.hangman/config.yaml.
type Config struct {
	*viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigWordsPath, defaultWordsPath)
	v.SetDefault(ConfigWordsEncoding, "")
	v.SetDefault(ConfigAlphabet, defaultAlphabet)
	v.SetDefault(ConfigAlphabetLetters, "")
	v.SetDefault(ConfigStopWords, defaultStopWords)
	v.SetDefault(ConfigPlaceholder, defaultPlaceholder)
	v.SetDefault(ConfigShowWord, false)
	v.SetDefault(ConfigDebug, false)
}

// DefaultConfig returns a config with only the defaults set. Mostly useful
// for tests.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	return &Config{Viper: v}
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("hangman", pflag.ContinueOnError)
	fs.String(ConfigWordsPath, defaultWordsPath, "path to the word list (one word per line, or a .yaml list)")
	fs.String(ConfigWordsEncoding, "", "encoding of the word list file, e.g. windows-1251 or koi8-r. Empty means UTF-8")
	fs.String(ConfigAlphabet, defaultAlphabet, "alphabet guesses must come from: cyrillic, latin, or a custom name used with --alphabet-letters")
	fs.String(ConfigAlphabetLetters, "", "explicit letters for a custom alphabet")
	fs.String(ConfigStopWords, defaultStopWords, "answers to the replay prompt that end the session, shell-quoted")
	fs.String(ConfigPlaceholder, defaultPlaceholder, "symbol shown for letters that are not revealed yet")
	fs.Bool(ConfigShowWord, false, "print the secret word when a round starts")
	fs.Bool(ConfigDebug, false, "debug logging")
	return fs
}

// Load parses args, binds them, and reads the optional config file.
// ConfigFileUsed is empty if no file was found.
func (c *Config) Load(args []string) error {
	v := viper.New()
	setDefaults(v)

	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	v.SetEnvPrefix("hangman")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".hangman"))
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	c.Viper = v
	return nil
}

// AdjustRelativePaths makes the word list path relative to the executable
// directory, unless it is absolute or it already exists relative to the
// working directory.
func (c *Config) AdjustRelativePaths(basePath string) {
	p := c.GetString(ConfigWordsPath)
	if p == "" || filepath.IsAbs(p) {
		return
	}
	if _, err := os.Stat(p); err == nil {
		return
	}
	adjusted := filepath.Join(basePath, p)
	log.Debug().Str("from", p).Str("to", adjusted).Msg("adjusted-words-path")
	c.Set(ConfigWordsPath, adjusted)
}

// SanitizedSettings returns all settings as a YAML document, suitable for
// logging.
func (c *Config) SanitizedSettings() string {
	out, err := yaml.Marshal(c.AllSettings())
	if err != nil {
		return err.Error()
	}
	return string(out)
}

// StopWords splits the stop-words setting like a shell would, so that
// `нет стоп "не хочу"` yields three entries.
func (c *Config) StopWords() ([]string, error) {
	return shellquote.Split(c.GetString(ConfigStopWords))
}

func (c *Config) Placeholder() (rune, error) {
	p := c.GetString(ConfigPlaceholder)
	if utf8.RuneCountInString(p) != 1 {
		return 0, ErrBadPlaceholder
	}
	r, _ := utf8.DecodeRuneInString(p)
	return r, nil
}
