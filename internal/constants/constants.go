package constants

const (
	Version        = `0.1.0`
	AppName        = `noman`
	ConfigFile     = `config`
	ConfigFileType = `yaml`
	ConfigDir      = `.config/noman`
	EnvPrefix      = `NOMAN`

	// DefaultNotesDir is resolved against the user's home directory.
	DefaultNotesDir = `.noman`
	NoteExt         = `.md`
	DefaultStyle    = `dark`
	DefaultWordWrap = 100
)
