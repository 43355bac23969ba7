package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/noman/internal/constants"
	"github.com/Paintersrp/noman/internal/pathutil"
)

// Config file keys. Each is also read from NOMAN_<KEY>, e.g. NOMAN_NOTES_DIR.
const (
	KeyNotesDir  = "notes_dir"
	KeyRecursive = "recursive"
	KeyRender    = "render"
	KeyStyle     = "style"
	KeyWordWrap  = "word_wrap"
)

type Config struct {
	NotesDir  string `yaml:"notes_dir"  json:"notes_dir"`
	Recursive bool   `yaml:"recursive"  json:"recursive"`
	Render    bool   `yaml:"render"     json:"render"`
	Style     string `yaml:"style"      json:"style"`
	WordWrap  int    `yaml:"word_wrap"  json:"word_wrap"`
}

func Default(home string) *Config {
	return &Config{
		NotesDir: DefaultNotesDir(home),
		Style:    constants.DefaultStyle,
		WordWrap: constants.DefaultWordWrap,
	}
}

// Load reads the YAML config at path on top of the defaults. A missing file
// is only an error when required is set, i.e. the user named it explicitly.
func Load(fsys afero.Fs, path, home string, required bool) (*Config, error) {
	cfg := Default(home)

	data, err := afero.ReadFile(fsys, path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !required:
		return cfg, nil
	case err != nil:
		return nil, NewError(fmt.Sprintf("failed to read config %q", path), err)
	}

	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, NewError(fmt.Sprintf("failed to parse config %q", path), err)
		}
	}

	cfg.NotesDir = pathutil.ExpandHome(cfg.NotesDir, home)
	if cfg.NotesDir == "" {
		cfg.NotesDir = DefaultNotesDir(home)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	if _, ok := glamour.DefaultStyles[cfg.Style]; !ok {
		return NewError(
			fmt.Sprintf("invalid style %q, choose from %s", cfg.Style, validStyleList()),
			nil,
		)
	}
	if cfg.WordWrap < 0 {
		return NewError(fmt.Sprintf("invalid word_wrap %d, must not be negative", cfg.WordWrap), nil)
	}
	return nil
}

func validStyleList() string {
	names := make([]string, 0, len(glamour.DefaultStyles))
	for name := range glamour.DefaultStyles {
		names = append(names, fmt.Sprintf("'%s'", name))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Overlay applies flags and environment variables bound to v over the values
// loaded from file. Flags win over the environment, which wins over the file.
func (cfg *Config) Overlay(v *viper.Viper, home string) error {
	v.SetDefault(KeyNotesDir, cfg.NotesDir)
	v.SetDefault(KeyRecursive, cfg.Recursive)
	v.SetDefault(KeyRender, cfg.Render)
	v.SetDefault(KeyStyle, cfg.Style)
	v.SetDefault(KeyWordWrap, cfg.WordWrap)

	cfg.NotesDir = pathutil.ExpandHome(v.GetString(KeyNotesDir), home)
	cfg.Recursive = v.GetBool(KeyRecursive)
	cfg.Render = v.GetBool(KeyRender)
	cfg.Style = v.GetString(KeyStyle)
	cfg.WordWrap = v.GetInt(KeyWordWrap)

	if cfg.NotesDir == "" {
		return NewError("notes directory must not be empty", nil)
	}

	return cfg.Validate()
}

// NewViper returns a viper instance reading NOMAN_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()
	return v
}
