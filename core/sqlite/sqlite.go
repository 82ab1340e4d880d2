// Package sqlite opens SQLite databases through database/sql with either
// the pure Go driver (modernc.org/sqlite, the default) or the CGO driver
// (github.com/mattn/go-sqlite3, built with -tags cgo_sqlite).
//
// Use Open instead of sql.Open so the DSN carries the options of the
// driver in use.
package sqlite

import (
	"database/sql"
	"strings"
)

// DriverName returns the database/sql driver name in use.
func DriverName() string {
	return driverName
}

// DriverType returns "cgo" for mattn/go-sqlite3 and "purego" for
// modernc.org/sqlite.
func DriverType() string {
	return driverType
}

// IsCGO returns true if the CGO implementation is being used.
func IsCGO() bool {
	return driverType == "cgo"
}

// Open opens the database at path with foreign keys enforced.
func Open(path string) (*sql.DB, error) {
	return sql.Open(driverName, dsn(path, foreignKeysParam))
}

// OpenReadOnly opens the database at path in read-only mode. The path is
// passed as a file: URI so both drivers hand mode=ro to SQLite.
func OpenReadOnly(path string) (*sql.DB, error) {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	return sql.Open(driverName, dsn(path, "mode=ro", foreignKeysParam))
}

func dsn(path string, params ...string) string {
	if path == ":memory:" {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&")
}

// Info describes the SQLite driver configuration.
type Info struct {
	DriverName string `json:"driver_name"`
	DriverType string `json:"driver_type"`
	IsCGO      bool   `json:"is_cgo"`
	Package    string `json:"package"`
}

// GetInfo returns information about the current SQLite configuration.
func GetInfo() Info {
	return Info{
		DriverName: driverName,
		DriverType: driverType,
		IsCGO:      IsCGO(),
		Package:    driverPackage,
	}
}
