package config

const (
	defaultRoot           = "."
	defaultAssetsDir      = "assets"
	defaultPagesDir       = "pages"
	defaultLogDir         = "~/.local/share/pagegen/logs"
	defaultDescriptorName = "index.ini"
	defaultPageExtension  = ".md"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Root:      defaultRoot,
			AssetsDir: defaultAssetsDir,
			PagesDir:  defaultPagesDir,
			LogDir:    defaultLogDir,
		},
		Generator: Generator{
			DescriptorName: defaultDescriptorName,
			PageExtension:  defaultPageExtension,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
