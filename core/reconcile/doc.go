// Package reconcile implements the calendar event reconciliation engine.
//
// Given the canonical holiday list (from core/holiday), a snapshot of a
// subject's existing holiday events, and the subject's location attributes,
// BuildPlan computes the minimal ordered sequence of create/update/delete
// operations that aligns the calendar with the holiday list. Apply executes
// a plan against a calendar Store.
//
// # Semantics
//
// Each target calendar ends up with exactly one all-day event per
// (holiday name, date). On update the event's location display becomes the
// union of its current labels and the holiday's, and the free/busy status
// is recomputed via the out-of-office resolver. Events not matching any
// canonical holiday are never touched.
//
// # Failure model
//
// Planning is pure and cannot fail. Application stops at the first store
// write failure and surfaces it to the caller; operations already applied
// stay applied, because a re-run against the new calendar state either
// finds the desired event present or re-attempts the missing operation.
package reconcile
