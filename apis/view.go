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

// ErrorBody is the client-facing body of an error response.
//
// It intentionally carries only the status and the correlation id. The
// capture location stays server side, in logs and response metadata.
type ErrorBody struct {
	// StatusCode is the numeric HTTP status.
	StatusCode int `json:"status_code"`

	// StatusDescription is the canonical reason phrase for StatusCode, or
	// the code's own text when none is registered.
	StatusDescription string `json:"status_description"`

	// ErrorID is the id generated when the error was captured.
	ErrorID string `json:"error_id"`
}
