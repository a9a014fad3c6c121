package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	cfgFile = "termtoe/config.yaml"
	logFile = "termtoe/debug.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor    int `yaml:"board" env:"TERMTOE_COLOR_BOARD"`
	GridColor     int `yaml:"grid" env:"TERMTOE_COLOR_GRID"`
	XColor        int `yaml:"x" env:"TERMTOE_COLOR_X"`
	OColor        int `yaml:"o" env:"TERMTOE_COLOR_O"`
	LabelColor    int `yaml:"label"`
	CursorColorBG int `yaml:"cursor_bg"`
	WinColorBG    int `yaml:"win_bg"`
}

type ConfigSymbols struct {
	X     string `yaml:"x" env:"TERMTOE_SYMBOL_X"`
	O     string `yaml:"o" env:"TERMTOE_SYMBOL_O"`
	Empty string `yaml:"empty"`
}

type Theme struct {
	DrawCursorBackground bool          `yaml:"draw_cursor_bg"`
	HighlightWinningLine bool          `yaml:"highlight_winning_line"`
	FullWidthLetters     bool          `yaml:"fullwidth_letters"`
	Colors               ConfigColors  `yaml:"colors"`
	Symbols              ConfigSymbols `yaml:"symbols"`
}

// UIConfig holds interface behaviour settings.
type UIConfig struct {
	Mouse     bool   `yaml:"mouse" env:"TERMTOE_MOUSE"`
	FocusMode bool   `yaml:"focus_mode" env:"TERMTOE_FOCUS"`
	LogLevel  string `yaml:"log_level" env:"TERMTOE_LOG_LEVEL"`
}

type Config struct {
	Theme Theme    `yaml:"theme"`
	UI    UIConfig `yaml:"ui"`
}

// InitConfig loads the configuration. An empty path searches the XDG config
// directories and falls back to the defaults when no file exists; an explicit
// path must exist. Environment variables override file values.
func InitConfig(path string) (*Config, error) {
	config := DefaultConfig
	if path == "" {
		if found, err := xdg.SearchConfigFile(cfgFile); err == nil {
			path = found
		}
	}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &config)
	} else {
		err = cleanenv.ReadEnv(&config)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	symbols := []string{c.Theme.Symbols.X, c.Theme.Symbols.O, c.Theme.Symbols.Empty}
	for _, s := range symbols {
		if utf8.RuneCountInString(s) != 1 {
			return &InvalidConfig{fmt.Sprintf("symbol %q must be a single character", s)}
		}
		r, _ := utf8.DecodeRuneInString(s)
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Theme.Symbols.X == c.Theme.Symbols.O {
		return &InvalidConfig{"X and O symbols must differ"}
	}
	if _, err := logrus.ParseLevel(c.UI.LogLevel); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Symbol returns the rune drawn for the given symbol setting.
func Symbol(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// DefaultPath returns the path the configuration is saved to, creating its
// parent directories.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(cfgFile)
}

// LogPath returns the path of the debug log, creating its parent directories.
func LogPath() (string, error) {
	return xdg.CacheFile(logFile)
}

// Save writes the configuration to path, or to DefaultPath when path is
// empty, and returns the path it wrote.
func (c *Config) Save(path string) (string, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return "", err
		}
	}
	if err := saveCfgFile(path, c, 0664); err != nil {
		return "", err
	}
	return path, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func saveCfgFile(filePath string, c *Config, perm fs.FileMode) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err = os.WriteFile(filePath, data, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// IsInvalid reports whether err is a validation error.
func IsInvalid(err error) bool {
	var invalid *InvalidConfig
	return errors.As(err, &invalid)
}
