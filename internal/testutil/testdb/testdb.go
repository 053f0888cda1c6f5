// Package testdb gives tests an in-memory sqlite database with the full schema.
package testdb

import (
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" // register sqlite3 dialect
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/db/gormdb"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
	"github.com/stretchr/testify/require"
)

func New(t *testing.T) *gorm.DB {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	// every connection of an in-memory sqlite db is a new empty db
	db.DB().SetMaxOpenConns(1)

	require.NoError(t, gormdb.AutoMigrate(db, models.All()...))
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func Count(t *testing.T, db *gorm.DB, model interface{}) int {
	var n int
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
