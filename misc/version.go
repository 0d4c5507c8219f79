// Package misc holds program identity values set at build time.
package misc

var (
	// set with -ldflags "-X lensconv/misc.version=..." by the build
	version = "dev"
	githash = "unknown"
)

func GetAppName() string {
	return "lensconv"
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return githash
}
