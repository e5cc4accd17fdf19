// Package domain contains the core entities of the Sojourn travel-insurance
// system: plan templates, quotes, policies, and claims, together with the
// error taxonomy and the host collaborator hooks.
//
// Entities are plain structs with JSON tags; the package has no dependencies
// on storage, transport, or pricing. Identity and referential rules:
//
//   - A Quote snapshots one pricing request and owns one PricedPlan per
//     catalog template, in catalog order.
//   - A Policy references the quote it was purchased from and snapshots the
//     plan name so it renders independently of later catalog changes.
//   - A Claim references an existing Policy and receives its status exactly
//     once, at creation.
package domain
