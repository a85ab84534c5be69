package document

import (
	"fmt"
	"strings"
)

// MissingFieldError names one mandatory field whose value is empty.
// Index 0 is used for request-level fields that are not numbered rows.
type MissingFieldError struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

func (e MissingFieldError) Error() string {
	if e.Index == 0 {
		return fmt.Sprintf("%s is required", e.Label)
	}
	return fmt.Sprintf("field %d (%s) is required", e.Index, e.Label)
}

// ValidationError lists every missing field of a request.
type ValidationError struct {
	DocumentType DocumentType        `json:"document_type"`
	Board        Board               `json:"board"`
	Violations   []MissingFieldError `json:"violations"`
}

func (e *ValidationError) Error() string {
	labels := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		if v.Index == 0 {
			labels[i] = v.Label
		} else {
			labels[i] = fmt.Sprintf("%d. %s", v.Index, v.Label)
		}
	}
	return fmt.Sprintf("%s (%s): %d mandatory field(s) missing: %s",
		e.DocumentType, e.Board, len(e.Violations), strings.Join(labels, "; "))
}

// Validate checks req against its mandatory field list and reports all
// missing fields at once in a *ValidationError. Structural problems (unknown
// type or board, a record that cannot serve the type) are returned as their
// own errors before any field is checked.
func Validate(req Request) error {
	req = req.Synced()
	specs, err := MandatoryFieldsFor(req.DocumentType, req.Board)
	if err != nil {
		return err
	}
	if req.Record == nil {
		return &RecordMismatchError{DocumentType: req.DocumentType}
	}
	if !req.Record.Serves(req.DocumentType) {
		return &RecordMismatchError{DocumentType: req.DocumentType, Record: req.Record.Kind()}
	}

	var violations []MissingFieldError
	if strings.TrimSpace(req.School.Name) == "" {
		violations = append(violations, MissingFieldError{Label: "School Name"})
	}
	if strings.TrimSpace(req.School.Address) == "" {
		violations = append(violations, MissingFieldError{Label: "School Address"})
	}
	// a transfer certificate reports its own numbered issue date row
	if req.IssueDate.IsZero() && req.DocumentType != TransferCertificate {
		violations = append(violations, MissingFieldError{Label: "Date of Issue"})
	}
	for _, spec := range specs {
		if spec.Extract(req.Record) == "" {
			violations = append(violations, MissingFieldError{Index: spec.Index, Label: spec.Label})
		}
	}
	if len(violations) > 0 {
		return &ValidationError{
			DocumentType: req.DocumentType,
			Board:        req.Board,
			Violations:   violations,
		}
	}
	return nil
}

// Fields pairs each mandatory field of req with its rendered value.
// It is meant for requests that already passed Validate.
func Fields(req Request) ([]FieldValue, error) {
	req = req.Synced()
	specs, err := MandatoryFieldsFor(req.DocumentType, req.Board)
	if err != nil {
		return nil, err
	}
	out := make([]FieldValue, len(specs))
	for i, spec := range specs {
		out[i] = FieldValue{Index: spec.Index, Label: spec.Label}
		if req.Record != nil {
			out[i].Value = spec.Extract(req.Record)
		}
	}
	return out, nil
}

// FieldValue is a numbered field with its rendered value.
type FieldValue struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Value string `json:"value"`
}
