package config

const (
	defaultCollectionRoot        = "~/music/collection"
	defaultLogDir                = "~/.local/share/quire/logs"
	defaultLogFormat             = "text"
	defaultLogLevel              = "info"
	defaultAuthority             = "ly"
	defaultOverwritePauseSeconds = 2
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CollectionRoot: defaultCollectionRoot,
			LogDir:         defaultLogDir,
		},
		Pieces: Pieces{
			DefaultAuthority:      defaultAuthority,
			OverwritePauseSeconds: defaultOverwritePauseSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
