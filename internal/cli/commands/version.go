package commands

// Version is set via ldflags at build time.
var Version = "dev"

// VersionTemplate is the output of --version.
const VersionTemplate = "minigrep {{.Version}}\n"
