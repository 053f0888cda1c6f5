package provider

import "time"

type PullRequest struct {
	Number  int
	Title   string
	Body    string
	State   string // open|closed
	HeadRef string
	HeadSHA string
	BaseRef string
	HTMLURL string
}

type Comment struct {
	ID      int64
	HTMLURL string
}

type GistFile struct {
	Name    string
	Content string
}

type Gist struct {
	ID      string
	HTMLURL string
}

// InstallationToken is a short-lived token scoped to one app installation.
type InstallationToken struct {
	Token     string
	ExpiresAt time.Time
}
