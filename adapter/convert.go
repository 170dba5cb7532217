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

package adapter

import (
	"net/http"
	"strconv"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/apis"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
)

// Domain is the google.rpc.ErrorInfo domain used for gRPC details.
const Domain = "errinfo.dirpx.dev"

// MetadataErrorID is the google.rpc.ErrorInfo metadata key holding the id.
const MetadataErrorID = "error_id"

// StatusDescription returns the canonical reason phrase for status, or the
// status's own decimal text when net/http has no phrase for it (e.g. "599").
func StatusDescription(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return strconv.Itoa(status)
}

// ToBody builds the client-facing body for an error response. Only the id is
// copied out of info; the location never reaches the body.
func ToBody(status int, info errinfo.ErrorInfo) apis.ErrorBody {
	return apis.ErrorBody{
		StatusCode:        status,
		StatusDescription: StatusDescription(status),
		ErrorID:           info.ErrorID,
	}
}

// ToDetails builds the gRPC status details for info: a RequestInfo whose
// request id is the error id, and an ErrorInfo whose reason is the code name.
// As with ToBody, the location is left out.
func ToDetails(c codes.Code, info errinfo.ErrorInfo) (*errdetails.RequestInfo, *errdetails.ErrorInfo) {
	req := &errdetails.RequestInfo{
		RequestId: info.ErrorID,
	}
	ei := &errdetails.ErrorInfo{
		Reason:   reasonOf(c),
		Domain:   Domain,
		Metadata: map[string]string{MetadataErrorID: info.ErrorID},
	}
	return req, ei
}

// reasonOf renders c in the UPPER_SNAKE_CASE form google.rpc.ErrorInfo
// expects, e.g. codes.NotFound to "NOT_FOUND".
func reasonOf(c codes.Code) string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "CODE_" + strconv.Itoa(int(c))
}

var codeNames = map[codes.Code]string{
	codes.OK:                 "OK",
	codes.Canceled:           "CANCELLED",
	codes.Unknown:            "UNKNOWN",
	codes.InvalidArgument:    "INVALID_ARGUMENT",
	codes.DeadlineExceeded:   "DEADLINE_EXCEEDED",
	codes.NotFound:           "NOT_FOUND",
	codes.AlreadyExists:      "ALREADY_EXISTS",
	codes.PermissionDenied:   "PERMISSION_DENIED",
	codes.ResourceExhausted:  "RESOURCE_EXHAUSTED",
	codes.FailedPrecondition: "FAILED_PRECONDITION",
	codes.Aborted:            "ABORTED",
	codes.OutOfRange:         "OUT_OF_RANGE",
	codes.Unimplemented:      "UNIMPLEMENTED",
	codes.Internal:           "INTERNAL",
	codes.Unavailable:        "UNAVAILABLE",
	codes.DataLoss:           "DATA_LOSS",
	codes.Unauthenticated:    "UNAUTHENTICATED",
}
