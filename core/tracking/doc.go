// Package tracking records which holiday packs have been applied to which
// subjects.
//
// The store is an optional audit surface: reconciliation is idempotent and
// does not depend on it, but operators use the history to answer "has pack
// X reached user Y yet". Backed by the optional GORM connection from
// core/database.
package tracking
