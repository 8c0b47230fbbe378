package github

// Result is a single search hit. Deduplication keys on Key.
type Result interface {
	Key() string
}

// RepoResult describes a repository found through the search API.
type RepoResult struct {
	Name        string
	FullName    string
	Description string
	URL         string
	Stars       int
	Forks       int
}

// Key returns the URL, or the full name when the URL is empty.
func (r RepoResult) Key() string {
	return identity(r.URL, r.FullName)
}

// Entry types reported for FileResult. TypeFile and TypeDir come straight
// from the contents API; TypeReadme marks the extra README entry.
const (
	TypeFile   = "file"
	TypeDir    = "dir"
	TypeReadme = "readme"
)

// ReadmeName is the display name given to flagged README entries.
const ReadmeName = "📖 README"

// FileResult describes a top-level file or directory of a repository.
type FileResult struct {
	Name     string
	Path     string
	FullName string
	URL      string
	Type     string
}

// Key returns the URL, or the full name when the URL is empty.
func (f FileResult) Key() string {
	return identity(f.URL, f.FullName)
}

func identity(url, fullName string) string {
	if url != "" {
		return url
	}
	return fullName
}
