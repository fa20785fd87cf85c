package repository

import "log"

// logAccess records store round-trips at a low-severity DB_ACCESS level so
// session resolution and CRUD traffic can be traced without raising the
// global log level.
func logAccess(format string, args ...any) {
	log.Printf("DB_ACCESS "+format, args...)
}
