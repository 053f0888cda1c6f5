package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
)

type Repository struct {
	gorm.Model

	ProviderID     int64 `gorm:"unique_index"` // use it (not name) as repo identifier because of repo renaming
	OrganizationID uint  `gorm:"index"`

	// weak reference to Installation.ProviderInstallationID, nil for repos
	// connected without the app
	ProviderInstallationID *int64 `gorm:"index"`

	Name          string
	FullName      string
	IsPrivate     bool
	Language      string
	DefaultBranch string

	HTMLURL  string
	CloneURL string
	SSHURL   string

	StargazersCount int
	ForksCount      int

	ProviderUpdatedAt *time.Time
}

func (r Repository) Owner() string {
	return strings.Split(r.FullName, "/")[0]
}

func (r Repository) Repo() string {
	parts := strings.SplitN(r.FullName, "/", 2)
	if len(parts) != 2 {
		return r.Name
	}
	return parts[1]
}

func (r Repository) String() string {
	return r.FullName
}

func (r Repository) GoString() string {
	return fmt.Sprintf("{FullName: %s, ID: %d, ProviderID: %d}", r.FullName, r.ID, r.ProviderID)
}
