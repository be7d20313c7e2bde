package panel

import (
	"fmt"
	"strconv"

	apperrors "backoffice/internal/errors"

	"github.com/shopspring/decimal"
)

type FieldKind string

const (
	FieldText    FieldKind = "text"
	FieldInt     FieldKind = "int"
	FieldDecimal FieldKind = "decimal"
	FieldSelect  FieldKind = "select"
)

// FieldSpec describes one form field of a domain. Numeric kinds are held as
// display strings in the draft and only coerced at submit time.
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Required bool
	Default  string
	Options  []string
}

// Draft is the mutable, not-yet-submitted form state. Values are always raw
// strings, decoupled from the remote list snapshot.
type Draft map[string]string

func BlankDraft(fields []FieldSpec) Draft {
	draft := make(Draft, len(fields))
	for _, f := range fields {
		draft[f.Name] = f.Default
	}
	return draft
}

func (d Draft) clone() Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// buildPayload validates required presence and coerces numeric fields.
// Any problem yields a ValidationError before a single byte goes on the wire.
func buildPayload(fields []FieldSpec, draft Draft) (map[string]any, error) {
	var details []apperrors.ValidationDetail
	for _, f := range fields {
		if f.Required && draft[f.Name] == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   f.Name,
				Message: fmt.Sprintf("%s is required", f.Name),
			})
		}
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError(details[0].Message, details...)
	}

	payload := make(map[string]any, len(fields))
	for _, f := range fields {
		raw := draft[f.Name]
		switch f.Kind {
		case FieldInt:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				msg := fmt.Sprintf("%s must be an integer", f.Name)
				return nil, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
					Field:   f.Name,
					Message: msg,
				})
			}
			payload[f.Name] = n
		case FieldDecimal:
			dec, err := decimal.NewFromString(raw)
			if err != nil {
				msg := fmt.Sprintf("%s must be a number", f.Name)
				return nil, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
					Field:   f.Name,
					Message: msg,
				})
			}
			payload[f.Name] = dec.InexactFloat64()
		default:
			payload[f.Name] = raw
		}
	}

	return payload, nil
}
