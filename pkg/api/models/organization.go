package models

import "github.com/jinzhu/gorm"

// Organization is the billing tenant. It's managed by the product UI,
// the pipeline only reads it.
type Organization struct {
	gorm.Model

	Name string
	Slug string `gorm:"unique_index"`

	// GithubLogin is the account login of the GitHub organization or user
	// connected during onboarding. Installations of that account are linked here.
	GithubLogin string `gorm:"index"`
}
