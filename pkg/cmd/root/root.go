package root

import (
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/noman/internal/config"
	"github.com/Paintersrp/noman/internal/constants"
	"github.com/Paintersrp/noman/internal/locator"
	"github.com/Paintersrp/noman/internal/resolve"
	"github.com/Paintersrp/noman/internal/state"
	"github.com/Paintersrp/noman/internal/viewer"
)

const (
	dirFlag  = "dir"
	pathFlag = "path"
)

type rootOptions struct {
	configFile string
	copy       bool
	verbose    bool
}

func NewCmdRoot(s *state.State) *cobra.Command {
	o := &rootOptions{}
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   constants.AppName + " [topic]",
		Short: "Print the one note whose name matches a topic.",
		Long: heredoc.Doc(`
			Looks up a Markdown note by topic and prints it.

			The topic is wrapped into the pattern '*<topic>*.md' and matched against
			note file names in the notes directory. Shell wildcards in the topic are
			honoured. The note is printed only when exactly one file matches; narrow
			the topic or the directory when several do.

			Settings are read from flags, then NOMAN_* environment variables, then
			$HOME/.config/noman/config.yaml.
		`),
		Example: `  noman git
  noman -r docker
  noman -d ~/cheats 'go*test'
  noman --render kubectl`,
		Version:       constants.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s, v, o)
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return config.NewError("invalid arguments", err)
	})

	flags := cmd.Flags()
	flags.StringP(dirFlag, "d", "", "Directory where to look for the specified note (default $HOME/.noman)")
	flags.StringP(pathFlag, "p", "", "Alias for --dir")
	_ = flags.MarkHidden(pathFlag)
	flags.BoolP(config.KeyRecursive, "r", false, "Search subdirectories of the notes directory as well")
	flags.Bool(config.KeyRender, false, "Render the note as formatted Markdown")
	flags.BoolVar(&o.copy, "copy", false, "Also copy the note to the clipboard")
	flags.StringVar(&o.configFile, "config", "", "config file (default is $HOME/.config/noman/config.yaml)")
	flags.BoolVar(&o.verbose, "verbose", false, "Log search details to stderr")

	v.BindPFlag(config.KeyNotesDir, flags.Lookup(dirFlag))
	v.BindPFlag(config.KeyRecursive, flags.Lookup(config.KeyRecursive))
	v.BindPFlag(config.KeyRender, flags.Lookup(config.KeyRender))

	return cmd
}

func run(
	cmd *cobra.Command,
	args []string,
	s *state.State,
	v *viper.Viper,
	o *rootOptions,
) error {
	if o.verbose && s.LogLevel != nil {
		s.LogLevel.Set(slog.LevelDebug)
	}

	if len(args) == 0 || args[0] == "" {
		_ = cmd.Usage()
		return config.NewError("please provide a note you would like to search for", nil)
	}
	if len(args) > 1 {
		s.Logger.Warn("more than one note given, only the first is considered", "ignored", args[1:])
	}
	topic := args[0]

	if err := resolveDirFlag(cmd); err != nil {
		return err
	}

	cfg, err := s.LoadConfig(o.configFile, o.configFile != "")
	if err != nil {
		return err
	}
	if err := cfg.Overlay(v, s.Home); err != nil {
		return err
	}

	if err := s.CheckNotesDir(); err != nil {
		return err
	}

	path, err := find(s, cfg, locator.Pattern(topic))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	nv := viewer.New(s.Fs, viewer.Options{
		Render:   cfg.Render,
		Style:    cfg.Style,
		WordWrap: viewer.TerminalWidth(out, cfg.WordWrap),
		Profile:  viewer.ColorProfile(out),
		Copy:     o.copy,
	}, s.Clipboard)

	return nv.Show(out, path)
}

// resolveDirFlag folds the --path alias into --dir and rejects an empty
// directory given on the command line.
func resolveDirFlag(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if !flags.Changed(dirFlag) && flags.Changed(pathFlag) {
		alias, _ := flags.GetString(pathFlag)
		if err := flags.Set(dirFlag, alias); err != nil {
			return config.NewError("invalid arguments", err)
		}
	}

	if flags.Changed(dirFlag) {
		if dir, _ := flags.GetString(dirFlag); dir == "" {
			return config.NewError("the notes directory must not be empty", nil)
		}
	}

	return nil
}

// find searches the notes directory and resolves the result to one path.
// The match set does not outlive this call.
func find(s *state.State, cfg *config.Config, pattern string) (string, error) {
	matches := locator.New(s.Fs, s.Logger).Find(cfg.NotesDir, pattern, cfg.Recursive)
	s.Logger.Debug(
		"searched notes",
		"root", cfg.NotesDir,
		"pattern", pattern,
		"recursive", cfg.Recursive,
		"matches", len(matches),
	)

	outcome, path, err := resolve.Resolve(matches)
	s.Logger.Debug("resolved topic", "outcome", outcome.String())

	return path, err
}
