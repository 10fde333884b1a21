// Package ingest decodes record files into the in-memory records the
// validator consumes. It accepts a top-level list of mappings encoded
// as JSON or YAML, chosen by file extension.
package ingest
