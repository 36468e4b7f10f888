// Copyright (c) 2026 Quran API. All rights reserved.

// Package validate turns bad input into VALIDATION_ERROR (400) responses
// with per-field details.
//
// [Validator] covers path parameters and free text parsed in handlers;
// [Struct] covers request bodies through ozzo-validation rules.
package validate

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/msr7799/quran-api/internal/platform/apperr"
)

const msgFailed = "Validation failed"

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// Validator accumulates field errors across a chain of checks; call Err
// last. The zero value is ready to use. Not safe for concurrent use.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails on an empty or whitespace-only value.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.fail(field, "This field is required")
	}
	return v
}

// MaxLen counts runes, so Arabic text is measured in letters, not bytes.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.fail(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Int parses raw (surrounding spaces allowed) into dest. "12abc", "1.5"
// and "" are rejected and leave dest untouched.
func (v *Validator) Int(field, raw string, dest *int) *Validator {
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		v.fail(field, "Must be an integer")
		return v
	}
	*dest = parsed
	return v
}

// Err returns nil when every check passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError(msgFailed, v.errs...)
}

func (v *Validator) fail(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// Struct runs ozzo-validation field rules against structPtr. Details are
// keyed by json tag and sorted by field name. A misconfigured rule comes
// back as the raw [validation.InternalError] so it surfaces as a 500.
func Struct(structPtr any, fields ...*validation.FieldRules) error {
	err := validation.ValidateStruct(structPtr, fields...)
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return internal
	}

	var byField validation.Errors
	if !errors.As(err, &byField) {
		return apperr.ValidationError(err.Error())
	}

	details := make([]apperr.FieldError, 0, len(byField))
	for _, name := range slices.Sorted(maps.Keys(byField)) {
		details = append(details, apperr.FieldError{Field: name, Message: byField[name].Error()})
	}
	return apperr.ValidationError(msgFailed, details...)
}
