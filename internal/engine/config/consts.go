package config

// ToolVersion is the version of the tool. It can be set by the build system
// or manually. If not set, it will return "v0.0.0-none" by default.
var ToolVersion string

// Exit codes. IfaceMissing and Usage are part of the scripting contract,
// keep the values stable.
const (
	ExitOK           = 0
	ExitGeneric      = 1
	ExitIfaceMissing = 2
	ExitUsage        = 5
)

// DotenvName is the credentials file picked up from the working directory.
var DotenvName string = ".env"

// MetaDir holds the tool's local state, the toggle history db lives there.
var MetaDir string = "./.meta"

func init() {
	if ToolVersion == "" {
		ToolVersion = "v0.0.0-none"
	}
}
