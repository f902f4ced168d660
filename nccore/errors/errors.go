/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package errors provides the error types shared by every NetConnect package.
//
// NetConnect distinguishes two user-facing failure kinds:
//
//   - ParseError
//     Returned when command text (or a single field inside it) cannot be
//     interpreted. Parse errors are raised before any state is touched, so a
//     failed parse never leaves a partial mutation behind.
//
//   - CommandError
//     Returned when a well-formed command cannot be applied to the current
//     address book (unknown id, self relation, missing relation, duplicate
//     person and so on).
//
// Field value objects report their constraint violations with
// ValidationError. Parsers wrap a ValidationError in a ParseError, so the
// fixed per-field message reaches the user unchanged while errors.As still
// finds both types.
//
// MarshalError and UnmarshalError guard the JSON and YAML encoders of model
// types and are mostly seen when loading a damaged data file.
//
// The messages of ParseError, ValidationError and CommandError are shown to
// users verbatim and are therefore part of the observable behavior.
package errors

import (
	stderrors "errors"
	"strconv"
)

// ParseError is returned when text cannot be interpreted as a command or as
// a typed value.
//
// Type identifies the logical type being parsed (for example "Role" or
// "Command"), Value carries the offending input, Reason is an optional fixed
// message shown to the user, and Err optionally carries the underlying cause
// (typically a *ValidationError).
type ParseError struct {
	// Type is the logical name of the type being parsed.
	Type string

	// Value is the textual input that could not be interpreted.
	Value string

	// Reason is the user-facing message. When empty, Error falls back to
	// the cause or to a generic message built from Type and Value.
	Reason string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface for ParseError.
//
// The message is, in order of preference: Reason, the message of Err, or
//
//	"netconnect: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "netconnect: invalid " + e.Type + " value: " + e.Value
}

// Unwrap returns the underlying cause so errors.As and errors.Is can reach it.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// MarshalError is returned when marshaling a typed value fails because it is
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, such as a zero
// value that was never validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Role").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"netconnect: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "netconnect: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload, and Reason describes what went wrong.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Data may contain personal details from the address book and is
	// deliberately left out of Error.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"netconnect: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "netconnect: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when a value object or model fails validation.
//
// Type identifies the logical type being validated (for example "Phone"),
// Field optionally names the offending field of a composite type, Reason is
// the fixed constraint message, and Value optionally holds the rejected input.
//
// Reason is user-facing: for field value objects it is the constraint text
// shown in the command box (for example "Tags names should be
// alphanumeric"), so Error returns it unchanged.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is the human-readable constraint message.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError and returns Reason.
func (e *ValidationError) Error() string {
	return e.Reason
}

// CommandError is returned when a parsed command cannot be executed against
// the current address book state.
type CommandError struct {
	// Message is the user-facing explanation.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface for CommandError.
func (e *CommandError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// IsParse reports whether err is, or wraps, a *ParseError.
func IsParse(err error) bool {
	var pe *ParseError
	return stderrors.As(err, &pe)
}

// IsCommand reports whether err is, or wraps, a *CommandError.
func IsCommand(err error) bool {
	var ce *CommandError
	return stderrors.As(err, &ce)
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}
