package config

const (
	defaultLogDir       = "~/.local/share/reelscan/logs"
	defaultCatalogDir   = "~/.local/share/reelscan/catalog"
	defaultScanSource   = "data/movies.js"
	defaultThreshold    = 6.0
	defaultTMDBBaseURL  = "https://api.themoviedb.org/3"
	defaultTMDBLanguage = "en-US"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:     defaultLogDir,
			CatalogDir: defaultCatalogDir,
		},
		Scan: Scan{
			Source:    defaultScanSource,
			Threshold: defaultThreshold,
		},
		Catalog: Catalog{
			Enabled: true,
		},
		TMDB: TMDB{
			BaseURL:  defaultTMDBBaseURL,
			Language: defaultTMDBLanguage,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
