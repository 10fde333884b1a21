// Package validate flags personal records that are structurally
// invalid or content duplicates of an earlier record.
//
// A Validator owns the state for exactly one sequential pass: a
// registry mapping content fingerprints to the identifier of the first
// record seen with that content, and the set of identifiers judged
// bad. Records must be processed strictly in input order — which
// identifier counts as "the original" of a duplicate pair depends on
// arrival order — so a Validator is not safe for concurrent use and
// should not be reused across runs.
//
// A record is bad when any of name, address, or zip is absent, null, or
// empty, when its zip is not a correctly formatted U.S. ZIP code, or
// when its content (identifier excluded) matches a record already
// processed. Duplicate detection flags every member of a duplicate
// group, including the first occurrence, and takes precedence over the
// field rules. A record with no usable identifier is not "invalid": it
// is malformed input, surfaced as a MissingIDError for the caller to
// handle.
package validate
