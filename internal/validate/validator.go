package validate

import (
	"log/slog"
	"sort"

	"sift/internal/logging"
	"sift/internal/record"
)

// Fields examined by the structural validity rules.
const (
	FieldName    = "name"
	FieldAddress = "address"
	FieldZip     = "zip"
)

// Set holds the identifiers of bad records for one validation run.
// Iteration order is unspecified.
type Set map[string]struct{}

// Has reports whether id was flagged.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the flagged identifiers sorted for stable output.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Finding pairs a flagged identifier with the first reason recorded
// for it. Reasons enrich reporting; the identifier set is the
// contract.
type Finding struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Validator accumulates duplicate and validity findings across one
// sequential pass over a record sequence. The zero value is not
// usable; construct with New. Not safe for concurrent use.
type Validator struct {
	log       *slog.Logger
	seen      map[string]string // fingerprint -> identifier of first occurrence
	bad       map[string]string // identifier -> first recorded reason
	processed int
}

// New returns a Validator scoped to a single run. A nil logger is
// replaced with a no-op logger.
func New(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Validator{
		log:  logger,
		seen: make(map[string]string),
		bad:  make(map[string]string),
	}
}

// Seen reports whether a record with identical content (identifier
// excluded) has already been processed. The first occurrence registers
// its fingerprint against the record's identifier and reports false;
// the registered identifier never changes afterwards, whatever
// identifiers later duplicates carry.
func (v *Validator) Seen(rec record.Record) bool {
	fp := rec.Fingerprint()
	if _, ok := v.seen[fp]; ok {
		return true
	}
	id, _ := rec.ID()
	v.seen[fp] = id
	return false
}

// Valid reports whether rec passes the structural field rules:
// non-blank name, non-blank address, and a non-blank, correctly
// formatted zip. It fails with MissingIDError when rec has no usable
// identifier.
func (v *Validator) Valid(rec record.Record) (bool, error) {
	if _, ok := rec.ID(); !ok {
		return false, &MissingIDError{Index: -1}
	}
	_, ok := structuralIssue(rec)
	return ok, nil
}

// structuralIssue returns ("", true) for a valid record, otherwise the
// first failing rule in check order.
func structuralIssue(rec record.Record) (string, bool) {
	if rec.Blank(FieldName) {
		return "name is blank", false
	}
	if rec.Blank(FieldAddress) {
		return "address is blank", false
	}
	if rec.Blank(FieldZip) {
		return "zip is blank", false
	}
	zip, ok := rec.Text(FieldZip)
	if !ok || !ValidZIP(zip) {
		return "zip format is invalid", false
	}
	return "", true
}

// Process runs one record through the duplicate check and, for first
// occurrences, the structural rules. A duplicate flags both the
// current identifier and the registered original; its field validity
// is not examined further. Returns MissingIDError when the record has
// no usable identifier, leaving the registry untouched.
func (v *Validator) Process(rec record.Record) error {
	index := v.processed
	v.processed++
	id, ok := rec.ID()
	if !ok {
		return &MissingIDError{Index: index}
	}

	fp := rec.Fingerprint()
	if origID, dup := v.seen[fp]; dup {
		v.flag(id, "duplicate of record "+origID)
		v.flag(origID, "duplicated by record "+id)
		v.log.Debug("duplicate record", "id", id, "original_id", origID, "index", index)
		return nil
	}
	v.seen[fp] = id

	if issue, ok := structuralIssue(rec); !ok {
		v.flag(id, issue)
		v.log.Debug("invalid record", "id", id, "issue", issue, "index", index)
	}
	return nil
}

// ValidateAll processes records strictly in input order and returns
// the accumulated set of bad identifiers. It aborts with
// MissingIDError on the first record lacking an identifier; findings
// recorded up to that point stay readable through Bad and Findings.
func (v *Validator) ValidateAll(records []record.Record) (Set, error) {
	for _, rec := range records {
		if err := v.Process(rec); err != nil {
			return nil, err
		}
	}
	v.log.Info("validation pass complete", "records", v.processed, "bad", len(v.bad))
	return v.Bad(), nil
}

// Bad returns the identifiers flagged so far as a fresh set.
func (v *Validator) Bad() Set {
	out := make(Set, len(v.bad))
	for id := range v.bad {
		out[id] = struct{}{}
	}
	return out
}

// Findings returns the flagged identifiers with their reasons, sorted
// by identifier.
func (v *Validator) Findings() []Finding {
	findings := make([]Finding, 0, len(v.bad))
	for id, reason := range v.bad {
		findings = append(findings, Finding{ID: id, Reason: reason})
	}
	sort.Slice(findings, func(i, j int) bool { return findings[i].ID < findings[j].ID })
	return findings
}

// Processed returns how many records have been handed to Process,
// counting records rejected for a missing identifier.
func (v *Validator) Processed() int {
	return v.processed
}

// flag records a reason for id. The first reason wins; flagging an
// already-flagged identifier is a no-op, matching set-add semantics.
func (v *Validator) flag(id, reason string) {
	if _, ok := v.bad[id]; ok {
		return
	}
	v.bad[id] = reason
}
