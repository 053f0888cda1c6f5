package migrations

import (
	"fmt"

	"github.com/mattes/migrate"
	_ "github.com/mattes/migrate/database/postgres" // migrate driver for postgres://
	_ "github.com/mattes/migrate/source/file"       // migrate source for file://
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	redsync "gopkg.in/redsync.v1"
)

// Runner applies SQL migrations from a directory. Several replicas start at
// once, so the run is serialized by a redis lock.
type Runner struct {
	distLock      *redsync.Mutex
	log           logutil.Log
	dbConnString  string
	migrationsDir string
}

func NewRunner(distLock *redsync.Mutex, log logutil.Log, dbConnString, migrationsDir string) *Runner {
	return &Runner{
		distLock:      distLock,
		log:           log,
		dbConnString:  dbConnString,
		migrationsDir: migrationsDir,
	}
}

func (r Runner) Run() error {
	if err := r.distLock.Lock(); err != nil {
		// Lock waits until the lock is freed by another replica
		return errors.Wrap(err, "can't acquire dist lock")
	}
	defer r.distLock.Unlock()

	m, err := migrate.New(fmt.Sprintf("file://%s", r.migrationsDir), r.dbConnString)
	if err != nil {
		return errors.Wrap(err, "can't initialize migrations")
	}

	if err = m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			r.log.Infof("Migrate: no ready to run migrations")
			return nil
		}

		return errors.Wrap(err, "can't execute migrations")
	}

	r.log.Infof("Successfully executed database migrations from %s", r.migrationsDir)
	return nil
}
