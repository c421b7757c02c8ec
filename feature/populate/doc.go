// Package populate implements the holiday population feature.
//
// It reconciles subjects' calendars against the canonical holiday set by
// combining three collaborators:
//  1. Pack source (S3/MinIO): the versioned holiday pack documents.
//  2. Directory (Microsoft Graph): subject lookup, eligibility attributes,
//     and mailbox time zones.
//  3. Calendar store (Microsoft Graph): reading and mutating events.
//
// # Reconciliation
//
// The heavy lifting is delegated to the core/reconcile engine: the service
// assembles the canonical holiday list and the subject's event snapshot,
// asks the engine for a plan, and applies it. Full-directory runs fan out
// over a bounded worker pool with per-subject failure isolation.
//
// # Eligibility
//
// Subjects without a primary SMTP proxy address or without an office
// location are skipped and reported as such; the engine is never invoked
// for them.
//
// # Components
//
//   - Service: Orchestrates pack loading, eligibility, planning, and apply.
//   - Handler: Exposes the HTTP trigger endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /populate            : Reconcile every enabled subject.
//   - POST /populate/:subject   : Reconcile one subject.
//   - POST /clear/:subject      : Delete all pack-managed events for one subject.
package populate
