package validate

import (
	"fmt"

	"sift/internal/record"
)

// MissingIDError reports a record that carries no usable identifier.
// This is a data-integrity failure, distinct from a validity judgment:
// the validator never swallows it, the caller decides whether to abort
// the run or skip the record.
type MissingIDError struct {
	// Index is the record's zero-based position in the input sequence,
	// or -1 when the record was checked outside a sequence.
	Index int
}

func (e *MissingIDError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("record has no %q field", record.IDField)
	}
	return fmt.Sprintf("record %d has no %q field", e.Index, record.IDField)
}
