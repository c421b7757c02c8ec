// Package holiday contains the holiday pack domain model and the pack
// merger.
//
// A holiday pack is a versioned JSON document declaring a category and a
// list of holiday records. Multiple packs may declare the same holiday
// (same name and date), typically as regional variants with different
// location lists.
//
// # Merging
//
// Combine folds all packs into one canonical holiday list keyed by
// (name, date). Identity fields (category, info, remove, outOfOffice) are
// fixed by the first pack that declares a key; only locations accumulate
// across packs, as a sorted deduplicated union.
//
// # Pack Source
//
// Source reads pack documents from an object-storage bucket via
// core/storage. CachedSource adds a TTL cache with singleflight so batch
// reconciliation over many subjects performs a single bucket read.
//
// # Errors
//
//   - ErrSourceUnavailable: the pack bucket is missing or unreachable.
//   - ErrMalformedRecord: a record that cannot be merged (e.g. no name).
package holiday
