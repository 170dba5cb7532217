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

// Package errinfo stamps each error occurrence with a unique identifier and
// the source location it was raised at.
//
// The identifier is meant to be shown to clients (for example in an HTTP
// error body, see dirpx.dev/errinfo/httpx) while the location stays on the
// server, in logs and in response-scoped metadata. Operators take the id a
// user reports and find the matching log line and code location.
//
// # Capturing
//
// The five capture entry points resolve their own call site:
//
//	if row == nil {
//	    return &NotFoundError{Info: errinfo.Info(), ID: id}
//	}
//
// Info, Warn, Error, Debug and Trace behave identically; the name only
// records the intent of the call site in capture-time logs and metrics.
// Capture takes the location explicitly, for generated code or adapters
// that already know it.
//
// # Carrying
//
// An ErrorInfo is a small comparable value. Callers embed it in their own
// error types and implement
//
//	ErrorInfo() errinfo.ErrorInfo
//
// or use Wrap. From finds the outermost ErrorInfo in an error chain.
//
// # Columns
//
// The Go runtime records file and line for a program counter, not the
// column. The column of an implicit capture is resolved by parsing the
// caller's source file once and locating the capture call on that line. When
// the source is not readable at runtime the column is 0.
package errinfo
