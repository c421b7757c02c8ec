// Package packs implements the holiday pack administration feature.
//
// It exposes the pack bucket over HTTP so operators can inspect, upload,
// and remove pack documents without touching the object store directly.
// Uploaded packs are validated against the same rules the merger enforces,
// and a pack without an ID is assigned a fresh UUID.
//
// Mutations invalidate the pack cache so the next population run sees the
// new bucket state immediately.
//
// # HTTP Endpoints
//
//   - GET    /packs        : Summarize every pack (id, category, record count).
//   - PUT    /packs/:name  : Validate and store a pack document.
//   - DELETE /packs/:name  : Remove a pack object.
package packs
