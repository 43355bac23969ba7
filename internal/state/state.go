package state

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/user"

	"github.com/spf13/afero"

	"github.com/Paintersrp/noman/internal/config"
	"github.com/Paintersrp/noman/internal/logging"
	"github.com/Paintersrp/noman/internal/pathutil"
	"github.com/Paintersrp/noman/internal/viewer"
)

// State carries everything a command needs, built once at start-up.
type State struct {
	Config    *config.Config
	Fs        afero.Fs
	Home      string
	Clipboard viewer.Clipboard
	Logger    *slog.Logger
	LogLevel  *slog.LevelVar
}

// NewState wires the real filesystem, clipboard and a stderr logger.
func NewState(stderr io.Writer) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	return &State{
		Fs:        afero.NewOsFs(),
		Home:      home,
		Clipboard: viewer.SystemClipboard(),
		Logger:    logging.New(stderr, level),
		LogLevel:  level,
	}, nil
}

// GetHomeDir looks the home directory up from the user account database and
// falls back to $HOME.
func GetHomeDir() (string, error) {
	if u, err := user.Current(); err == nil && u.HomeDir != "" {
		return u.HomeDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

// LoadConfig reads the config file; explicit marks a path given on the
// command line, which must exist.
func (s *State) LoadConfig(path string, explicit bool) (*config.Config, error) {
	if path == "" {
		path = config.GetConfigPath(s.Home)
	}

	cfg, err := config.Load(s.Fs, path, s.Home, explicit)
	if err != nil {
		return nil, err
	}

	s.Config = cfg
	return cfg, nil
}

// RootNotFoundError reports a notes directory that is missing or is not a
// directory.
type RootNotFoundError struct {
	Path    string
	Default bool
	Err     error
}

func (e *RootNotFoundError) Error() string {
	if e.Default {
		return fmt.Sprintf(
			"the default notes directory (%q) does not exist. Please create it first",
			e.Path,
		)
	}
	return fmt.Sprintf("the notes directory %q does not exist: %v", e.Path, e.Err)
}

func (e *RootNotFoundError) Unwrap() error {
	return e.Err
}

var errNotDir = errors.New("not a directory")

// CheckNotesDir verifies the configured notes directory before any search.
func (s *State) CheckNotesDir() error {
	if s.Config == nil {
		return fmt.Errorf("state configuration is not initialized")
	}

	dir := s.Config.NotesDir
	isDefault := pathutil.SamePath(dir, config.DefaultNotesDir(s.Home))

	info, err := s.Fs.Stat(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			isDefault = false
		}
		return &RootNotFoundError{Path: dir, Default: isDefault, Err: err}
	}
	if !info.IsDir() {
		return &RootNotFoundError{Path: dir, Err: errNotDir}
	}

	return nil
}
