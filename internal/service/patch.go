package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PatchOp is one step of a JSON-patch style document over the mutable fields
// of a point of interest. Supported paths are /name and /description.
type PatchOp struct {
	Op    string          `json:"op" binding:"required"`
	Path  string          `json:"path" binding:"required"`
	Value json.RawMessage `json:"value,omitempty"`
}

// pointOfInterestPatch is the working copy patch operations mutate. The live
// entity is only touched after the whole document applied and validated.
type pointOfInterestPatch struct {
	Name        string  `validate:"required,max=100"`
	Description *string `validate:"omitempty,max=500"`
}

// applyPatchOps applies the operations in caller order. Any unknown op, path
// or incompatible value rejects the whole document, nothing partial survives.
func applyPatchOps(working *pointOfInterestPatch, ops []PatchOp) error {
	for _, op := range ops {
		path := strings.ToLower(strings.TrimSpace(op.Path))

		switch op.Op {
		case "add", "replace":
			value, err := decodePatchValue(op.Value)
			if err != nil {
				return fmt.Errorf("%w: value for %q is not a string", ErrMalformedPatch, op.Path)
			}
			switch path {
			case "/name":
				if value == nil {
					return fmt.Errorf("%w: %q does not accept null", ErrMalformedPatch, op.Path)
				}
				working.Name = *value
			case "/description":
				working.Description = value
			default:
				return fmt.Errorf("%w: unknown path %q", ErrMalformedPatch, op.Path)
			}
		case "remove":
			switch path {
			case "/name":
				working.Name = ""
			case "/description":
				working.Description = nil
			default:
				return fmt.Errorf("%w: unknown path %q", ErrMalformedPatch, op.Path)
			}
		default:
			return fmt.Errorf("%w: unsupported op %q", ErrMalformedPatch, op.Op)
		}
	}

	return nil
}

func decodePatchValue(raw json.RawMessage) (*string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var value *string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	return value, nil
}
