// Package record models the input records sift validates: free-form
// field/value mappings carrying a reserved identifier field plus the
// name, address, and zip fields the validity rules examine.
//
// The package owns the content fingerprint used for duplicate
// detection. A fingerprint is a canonical, type-tagged serialization
// of every field except the identifier, so two records compare equal
// only when their key sets and values match exactly, type included —
// the number 0 never collides with the string "0", and a null field
// never collides with the string "null".
package record
