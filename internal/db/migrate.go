package db

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rotisserie/eris"

	"resonate/db/migrations"
)

// ErrDirty is returned when a previous migration failed halfway and the
// schema needs manual repair.
var ErrDirty = errors.New("database is in dirty state")

// Migrate brings the schema at addr to migrations.Version. It reports
// whether anything was applied.
func Migrate(addr string) (bool, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return false, eris.Wrap(err, "db: open migrations")
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return false, eris.Wrap(err, "db: init migrate")
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return false, eris.Wrap(err, "db: read schema version")
	}
	if dirty {
		return false, ErrDirty
	}

	err = mg.Migrate(migrations.Version)
	if errors.Is(err, migrate.ErrNoChange) {
		return false, nil
	}
	if err != nil {
		return false, eris.Wrap(err, "db: apply migrations")
	}
	return true, nil
}
