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

package errinfo

import (
	"errors"
	"fmt"
	"io"

	"dirpx.dev/errinfo/severity"
	"github.com/zeromicro/go-zero/core/logx"
)

// Location is the file/line/column of a capture call site.
//
// Line and Column are 1-based. A zero Column means the column could not be
// resolved.
type Location struct {
	File   string `json:"file"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

// String renders the location as "file: F, line: L, column: C".
func (l Location) String() string {
	return fmt.Sprintf("file: %s, line: %d, column: %d", l.File, l.Line, l.Column)
}

// ErrorInfo pairs a freshly generated error id with the location where it
// was captured. It is immutable by convention and compared with ==.
type ErrorInfo struct {
	// ErrorID is the externally visible correlation token.
	ErrorID string `json:"error_id"`

	// Location is where the capture happened. It must not be sent to
	// clients.
	Location Location `json:"location"`
}

// Capture builds an ErrorInfo for an explicit location. It never fails.
func Capture(file string, line, column uint32) ErrorInfo {
	return capture(loadConfig(), severity.Empty, Location{File: file, Line: line, Column: column})
}

// String renders the info as "errorid: ID, location: (LOCATION)".
func (i ErrorInfo) String() string {
	return fmt.Sprintf("errorid: %s, location: (%s)", i.ErrorID, i.Location)
}

// IsZero reports whether i is the zero ErrorInfo.
func (i ErrorInfo) IsZero() bool {
	return i == ErrorInfo{}
}

// LogFields returns the logx fields used whenever an ErrorInfo is logged.
func (i ErrorInfo) LogFields() []logx.LogField {
	return []logx.LogField{
		logx.Field("error_id", i.ErrorID),
		logx.Field("file", i.Location.File),
		logx.Field("line", i.Location.Line),
		logx.Field("column", i.Location.Column),
	}
}

// carrier is the shape From looks for. It matches apis.Carrier.
type carrier interface {
	ErrorInfo() ErrorInfo
}

// Wrap attaches info to err. The result has err's message, unwraps to err
// and is found by From. Wrap returns nil when err is nil.
func Wrap(err error, info ErrorInfo) error {
	if err == nil {
		return nil
	}
	return &tagged{err: err, info: info}
}

// From returns the outermost ErrorInfo carried by err or its chain.
func From(err error) (ErrorInfo, bool) {
	var c carrier
	if errors.As(err, &c) {
		return c.ErrorInfo(), true
	}
	return ErrorInfo{}, false
}

type tagged struct {
	err  error
	info ErrorInfo
}

func (e *tagged) Error() string { return e.err.Error() }

func (e *tagged) Unwrap() error { return e.err }

func (e *tagged) ErrorInfo() ErrorInfo { return e.info }

// Format prints the plain message for %s and %v, and appends the info for
// %+v so that debug logs carry the location.
func (e *tagged) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "%+v [%s]", e.err, e.info)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}
