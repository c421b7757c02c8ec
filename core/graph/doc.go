// Package graph is the Microsoft Graph adapter. It implements the two
// external collaborator boundaries the reconciliation core depends on:
//
//   - Directory source: user lookup and listing with the location
//     attributes reconciliation consults, plus mailbox time zone.
//   - Calendar store: listing events by category and creating, patching,
//     and deleting events. It satisfies reconcile.Store.
//
// Authentication uses the OAuth2 client-credentials grant against the
// tenant's token endpoint; the http client refreshes tokens transparently.
// Collection responses are paged via @odata.nextLink and always drained, so
// callers see complete lists.
//
// The core exposes holiday categories as a typed string set; this adapter
// alone translates that set into the `categories/any(c:c eq '...')` OData
// filter the store requires.
package graph
