// Package misc keeps build time information.
package misc

// Set by linker: -ldflags "-X cssanim/misc.version=... -X cssanim/misc.gitHash=..."
var (
	appName = "cssanim"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
