// Package report renders the outcome of a validation run as plain
// identifier lines, a table, or JSON. The engine guarantees no
// iteration order on its bad set; renderers emit findings in the order
// given, which validate.Findings already sorts by identifier.
package report
