// Package config provides configuration management for the uparse CLI/REPL.
// Configuration is loaded from TOML files with embedded defaults, the way
// the teacher's cmd/calcmark/config package does it.
package config

// Config is the root configuration structure.
type Config struct {
	Parse ParseConfig `mapstructure:"parse"`
	REPL  REPLConfig  `mapstructure:"repl"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// ParseConfig holds the [parse] table of the config file. The CLI
// subcommands take their encoding and catalog from their own flags and do
// not read these values.
type ParseConfig struct {
	Encoding   string `mapstructure:"encoding"`    // "utf8", "ascii", or "latin1"
	CatalogDir string `mapstructure:"catalog_dir"` // directory of extra *.yaml catalogs
}

// REPLConfig holds settings for the interactive explorer.
type REPLConfig struct {
	HistorySize int  `mapstructure:"history_size"`
	ShowDims    bool `mapstructure:"show_dims"`
}

// ThemeConfig defines the REPL's lipgloss colors as hex strings.
type ThemeConfig struct {
	Primary string `mapstructure:"primary"` // title bar background
	Accent  string `mapstructure:"accent"`  // "> " marker before each history input
	Error   string `mapstructure:"error"`   // error messages
	Muted   string `mapstructure:"muted"`   // help text
	Output  string `mapstructure:"output"`  // parsed-unit result line
}
