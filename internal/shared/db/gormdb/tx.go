package gormdb

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

// InTx runs f in a transaction: commit on nil error, rollback otherwise.
func InTx(db *gorm.DB, f func(tx *gorm.DB) error) (err error) {
	tx := db.Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err = f(tx); err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			err = errors.Wrapf(err, "failed to rollback transaction: %s", rollbackErr)
		}
		return err
	}

	if commitErr := tx.Commit().Error; commitErr != nil {
		return errors.Wrap(commitErr, "failed to commit transaction")
	}

	return nil
}
