// Package contracts validates accounts-payable payloads before they reach a handler's
// business logic.
//
// Each entity has up to three views: a create contract (ObjectSchema with defaults), an
// update contract (PartialWithAtLeastOne derived from the create struct, or a narrow patch
// built with Object and AtLeastOne), and a query contract (QuerySchema over url.Values).
// Every view returns either the normalized value or FieldErrors listing each violation in
// field declaration order. Schemas are built at package init and never mutated, so they
// may be used from any number of goroutines.
package contracts
