package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

type Installation struct {
	gorm.Model

	ProviderInstallationID int64 `gorm:"unique_index"`

	AccountID    int64
	AccountLogin string
	AccountType  string // User|Organization

	Permissions StringMap  `gorm:"type:text"`
	Events      StringList `gorm:"type:text"`

	SuspendedAt *time.Time

	// OrganizationID is nil until the account is linked to a tenant
	OrganizationID *uint
}

func (i Installation) IsSuspended() bool {
	return i.SuspendedAt != nil
}
