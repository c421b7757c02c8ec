// Package database provides the optional connection used by the
// pack-application tracking store.
//
// It wraps GORM with sane pool settings and silent logging. MySQL is the
// production driver; sqlite (including :memory:) backs unit tests. The
// connection is optional: when it cannot be established the application
// logs a warning and runs without tracking.
package database
