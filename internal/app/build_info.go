package app

import "fmt"

// Build metadata, injected at link time:
//
//	go build -ldflags "-X gallerysync/internal/app.buildVersion=v1.0.0"
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// Version returns the injected build version, or "N/A" for a plain
// `go build`.
func Version() string {
	if buildVersion == "" {
		return "N/A"
	}
	return buildVersion
}

// PrintBuildInfo writes the build metadata to stdout on startup.
func PrintBuildInfo() {
	date, commit := buildDate, buildCommit
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}

	fmt.Printf("Build version: %s\n", Version())
	fmt.Printf("Build date: %s\n", date)
	fmt.Printf("Build commit: %s\n", commit)
}
