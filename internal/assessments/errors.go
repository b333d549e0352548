package assessments

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	// ErrJustificationRequired guards the DONE transition: an item may
	// only be closed with a non-empty justification.
	ErrJustificationRequired = errors.New("justification required")
)
