// Package version identifies the scoring engine build stamped on every result.
package version

// BuildInfo holds version information about the engine build.
type BuildInfo struct {
	Engine  string `json:"engine"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	// Lexicon is the version of the embedded word and phrase tables
	Lexicon int `json:"lexicon"`
}

// Info returns the build information. version, commit and date are set at
// build time:
//
//	-ldflags "-X 'github.com/vaibhavgarg230/trustlens-sub000/internal/core/version.version=v1.2.0'"
func Info(lexiconVersion int) BuildInfo {
	return BuildInfo{
		Engine:  "trustlens",
		Version: version,
		Commit:  commit,
		Date:    date,
		Lexicon: lexiconVersion,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
