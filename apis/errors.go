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

package apis

import "dirpx.dev/errinfo"

// Carrier is an error that carries the ErrorInfo captured where it was
// raised.
//
// Application error types usually embed an errinfo.ErrorInfo field and
// expose it through this method:
//
//	type NotFoundError struct {
//	    Info errinfo.ErrorInfo
//	    ID   string
//	}
//
//	func (e *NotFoundError) Error() string                { return "user " + e.ID + " not found" }
//	func (e *NotFoundError) ErrorInfo() errinfo.ErrorInfo { return e.Info }
//
// errinfo.From finds a Carrier anywhere in an error chain.
type Carrier interface {
	error

	// ErrorInfo returns the info captured at the error's origin.
	ErrorInfo() errinfo.ErrorInfo
}

// Describable is the capability the formatters need from the error being
// reported: a textual representation for the server-side log line.
//
// Every Go error satisfies it. Errors that implement fmt.Formatter can
// render a richer form for the %+v verb, which is what gets logged.
type Describable = error
