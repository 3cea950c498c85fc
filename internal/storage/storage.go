package storage

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/sirupsen/logrus"

	"github.com/goserg/sportscheduler/internal/migrate"
)

// New opens the SQLite database file and brings its schema up to date.
func New(l *logrus.Logger, fileName string) (*sql.DB, error) {
	log := l.WithField("from", "storage")
	db, err := sql.Open("sqlite3", BuildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		return nil, err
	}
	err = migrate.Up(db)
	if err != nil {
		return nil, err
	}
	log.WithField("file", fileName).Info("database connected")
	return db, nil
}

func BuildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}
