package order

import (
	"encoding/json"
	"errors"
	"fmt"

	"ordertracker/internal/pkg/errs"
)

const (
	titleKey  = "title"
	statusKey = "status"
)

// ErrPayloadIsNotObject is the cause reported for bodies that are not a JSON object.
var ErrPayloadIsNotObject = errors.New("payload must be a JSON object")

// CreatePayload is a validated and sanitized create request.
type CreatePayload struct {
	Title  string
	Status Status
}

// UpdatePayload is a validated and sanitized update request. Absent fields are nil.
type UpdatePayload struct {
	Title  *string
	Status *Status
}

// Patch converts the payload into the store's partial update.
func (p UpdatePayload) Patch() Patch {
	return Patch{Title: p.Title, Status: p.Status}
}

// IsCreatePayload reports whether raw is a JSON object holding both a title
// and a valid status.
func IsCreatePayload(raw []byte) bool {
	_, err := ParseCreatePayload(raw)
	return err == nil
}

// IsUpdatePayload reports whether raw is a JSON object holding a title, or a
// status with a valid value.
func IsUpdatePayload(raw []byte) bool {
	_, err := ParseUpdatePayload(raw)
	return err == nil
}

// ParseCreatePayload validates raw and returns only its recognized fields.
// Both keys are required and the status must be a member of Statuses(). The
// title may hold any JSON value; anything but a string becomes "".
func ParseCreatePayload(raw []byte) (CreatePayload, error) {
	fields, err := decodeObject(raw)
	if err != nil {
		return CreatePayload{}, err
	}

	_, hasTitle := fields[titleKey]
	statusRaw, hasStatus := fields[statusKey]
	if !hasTitle || !hasStatus {
		var missing []error
		if !hasTitle {
			missing = append(missing, errs.NewValueIsRequiredError(titleKey))
		}
		if !hasStatus {
			missing = append(missing, errs.NewValueIsRequiredError(statusKey))
		}
		return CreatePayload{}, errors.Join(missing...)
	}

	if _, err = decodeStatus(statusRaw); err != nil {
		return CreatePayload{}, err
	}

	return SanitizeCreate(fields), nil
}

// ParseUpdatePayload validates raw and returns only its recognized fields.
// A title key alone is enough to accept the payload, whatever its value and
// even next to an invalid status; SanitizeUpdate drops both a non-string
// title and such a status.
func ParseUpdatePayload(raw []byte) (UpdatePayload, error) {
	fields, err := decodeObject(raw)
	if err != nil {
		return UpdatePayload{}, err
	}

	if _, ok := fields[titleKey]; ok {
		return SanitizeUpdate(fields), nil
	}

	statusRaw, ok := fields[statusKey]
	if !ok {
		return UpdatePayload{}, errs.NewValueIsRequiredErrorWithCause(
			"payload",
			fmt.Errorf("one of %q or %q must be present", titleKey, statusKey),
		)
	}
	if _, err = decodeStatus(statusRaw); err != nil {
		return UpdatePayload{}, err
	}

	return SanitizeUpdate(fields), nil
}

// SanitizeCreate projects a decoded object onto title and status, discarding
// every other key. A title that is not a string becomes "". It does not
// validate.
func SanitizeCreate(fields map[string]json.RawMessage) CreatePayload {
	var p CreatePayload
	if raw, ok := fields[titleKey]; ok {
		if title, isString := decodeTitle(raw); isString {
			p.Title = title
		}
	}
	if raw, ok := fields[statusKey]; ok {
		_ = json.Unmarshal(raw, &p.Status)
	}
	return p
}

// SanitizeUpdate projects a decoded object onto title and status, discarding
// every other key. A title that is not a string and a status outside the
// enum are dropped.
func SanitizeUpdate(fields map[string]json.RawMessage) UpdatePayload {
	var p UpdatePayload
	if raw, ok := fields[titleKey]; ok {
		if title, isString := decodeTitle(raw); isString {
			p.Title = &title
		}
	}
	if raw, ok := fields[statusKey]; ok {
		if status, err := decodeStatus(raw); err == nil {
			p.Status = &status
		}
	}
	return p
}

func decodeObject(raw []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	if fields == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload", ErrPayloadIsNotObject)
	}
	return fields, nil
}

// decodeTitle reports whether raw is a JSON string and returns it. Null and
// every other JSON type yield "", false.
func decodeTitle(raw json.RawMessage) (string, bool) {
	var title *string
	if err := json.Unmarshal(raw, &title); err != nil || title == nil {
		return "", false
	}
	return *title, true
}

func decodeStatus(raw json.RawMessage) (Status, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(statusKey, err)
	}
	if !IsValidStatus(s) {
		return "", Status(s).Validate()
	}
	return Status(s), nil
}
