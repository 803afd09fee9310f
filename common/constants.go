// Package common provides shared constants, types, and utilities
// used across exforms.
package common

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "io.exforms.demo"
	// AppName is the display name of the application.
	AppName = "exforms"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "exforms"
)

// File names used by the application.
const (
	ConfigFileName    = "config.yaml"
	LogFileName       = "exforms.log"
	PositionsDirName  = "positions"
	PositionsDBName   = "positions.db"
	PositionExtension = ".position.yaml"
)

// Host values.
const (
	HostGTK = "gtk"
	HostTUI = "tui"
)

// Position store backends.
const (
	PositionBackendFile   = "file"
	PositionBackendSQLite = "sqlite"
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UI constants.
const (
	// DefaultWindowWidth is the default form width.
	DefaultWindowWidth = 640
	// DefaultWindowHeight is the default form height.
	DefaultWindowHeight = 480
)
