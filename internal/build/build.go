// Package build holds the version information set with -ldflags at release
// time.
package build

import "time"

var (
	commit  = ""
	date    = ""
	version = "dev"
	repoURL = "https://github.com/ItsNotGoodName/webdesk"
)

var Current = newBuild(commit, date, version, repoURL)

type Build struct {
	Commit     string    `json:"commit,omitempty"`
	Version    string    `json:"version"`
	Date       time.Time `json:"date,omitempty"`
	RepoURL    string    `json:"repo_url,omitempty"`
	CommitURL  string    `json:"commit_url,omitempty"`
	ReleaseURL string    `json:"release_url,omitempty"`
}

func newBuild(commit, date, version, repoURL string) Build {
	b := Build{
		Commit:  commit,
		Version: version,
		RepoURL: repoURL,
	}
	b.Date, _ = time.Parse(time.RFC3339, date)

	if repoURL == "" {
		return b
	}
	if commit != "" {
		b.CommitURL = repoURL + "/tree/" + commit
	}
	if version != "dev" {
		b.ReleaseURL = repoURL + "/releases/tag/" + version
	}
	return b
}

func (b Build) String() string {
	if b.Commit == "" {
		return b.Version
	}
	short := b.Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return b.Version + " (" + short + ")"
}
