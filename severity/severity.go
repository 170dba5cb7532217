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

package severity

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Severity is the canonical, validated representation of a capture severity.
//
// It is a separate type (not just string) so that option and config structs
// can say which values they accept.
type Severity string

const (
	// Info marks a capture made on an informational path, e.g. a handled
	// "not found" that is still worth correlating.
	Info Severity = "info"

	// Warn marks a capture on a degraded but recoverable path.
	Warn Severity = "warn"

	// Error marks a capture on a failure path. This is the common case.
	Error Severity = "error"

	// Debug marks a capture that is only interesting while debugging.
	Debug Severity = "debug"

	// Trace marks the most verbose captures.
	Trace Severity = "trace"
)

// Empty is the zero-value severity. It is never valid.
var Empty Severity = ""

var (
	// ErrSeverityInvalid is returned when a value cannot be parsed as one of
	// the known severities.
	ErrSeverityInvalid = errors.New("errinfo: invalid severity")
)

var (
	_ encoding.TextMarshaler   = (*Severity)(nil)
	_ encoding.TextUnmarshaler = (*Severity)(nil)
)

// All returns the known severities in declaration order.
func All() []Severity {
	return []Severity{Info, Warn, Error, Debug, Trace}
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Severity value.
func Parse(s string) (Severity, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Severity(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Severity {
	sev, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sev
}

// Normalize trims surrounding spaces, lowercases the value and folds the
// common long spelling "warning" into "warn".
//
// It does NOT guarantee that the result is valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	if s == "warning" {
		s = string(Warn)
	}
	return s
}

// Validate checks whether the provided Severity is one of the known values.
func Validate(sev Severity) error {
	return validate(string(sev))
}

// String returns the canonical string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func validate(s string) error {
	switch Severity(s) {
	case Info, Warn, Error, Debug, Trace:
		return nil
	default:
		return ErrSeverityInvalid
	}
}
