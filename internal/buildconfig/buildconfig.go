package buildconfig

// Set with -ldflags "-X github.com/Harshitk-cp/tenancy/internal/buildconfig.version=..."
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}

// Info is reported by the health endpoint and the startup log line.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
}

func Current() Info {
	return Info{Version: version, Commit: commit, BuildDate: buildDate}
}
