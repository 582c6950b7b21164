// Package misc holds build time information injected by the linker.
package misc

// Set with -ldflags "-X tokencss/misc.version=... -X tokencss/misc.githash=...".
var (
	appName = "tokencss"
	version = "dev"
	githash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return githash
}
