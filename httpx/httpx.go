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

// Package httpx turns an error and its errinfo.ErrorInfo into an HTTP error
// response.
//
// The response body carries the status, its reason phrase and the error id.
// The capture location is logged and kept as response-scoped metadata for
// middleware (see InfoWriter and Middleware); it is never written to the
// client.
package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/adapter"
	"dirpx.dev/errinfo/apis"
	"dirpx.dev/errinfo/internal/metrics"
	"dirpx.dev/errinfo/severity"
	"github.com/zeromicro/go-zero/core/logx"
	zhttpx "github.com/zeromicro/go-zero/rest/httpx"
)

// Response is a formatted error response, ready to be written.
type Response struct {
	// StatusCode is the HTTP status the response is written with.
	StatusCode int

	// Body is the JSON payload.
	Body apis.ErrorBody

	info errinfo.ErrorInfo
}

// ErrorInfo returns the full info the response was formatted with. It is
// the response-scoped metadata; Write hands it to an InfoWriter.
func (r Response) ErrorInfo() errinfo.ErrorInfo {
	return r.info
}

// Write attaches the ErrorInfo to w (when w is, or wraps, an InfoWriter)
// and writes the JSON body with the response status.
func (r Response) Write(w http.ResponseWriter) {
	attach(w, r.info)
	zhttpx.WriteJson(w, r.StatusCode, r.Body)
}

// FormatError logs err at error level and builds the response for status.
// It never fails.
func FormatError(status int, err apis.Describable, info errinfo.ErrorInfo) Response {
	return FormatErrorCtx(context.Background(), status, err, info)
}

// FormatErrorCtx is FormatError with a request context, so the log line
// carries the trace and span of the request.
func FormatErrorCtx(ctx context.Context, status int, err apis.Describable, info errinfo.ErrorInfo) Response {
	fields := append(info.LogFields(),
		logx.Field("status", status),
		logx.Field("error", fmt.Sprintf("%+v", err)),
	)
	logx.WithContext(ctx).Errorw("error response", fields...)
	metrics.IncHTTPResponse(status)

	return Response{
		StatusCode: status,
		Body:       adapter.ToBody(status, info),
		info:       info,
	}
}

// WriteError formats and writes an error response for r.
func WriteError(w http.ResponseWriter, r *http.Request, status int, err apis.Describable, info errinfo.ErrorInfo) {
	FormatErrorCtx(r.Context(), status, err, info).Write(w)
}

// Error writes err as an error response, taking the ErrorInfo from err's
// chain (errinfo.From) and the status from an HTTPStatus() int method when
// err has one, 500 otherwise.
//
// Errors that carry no ErrorInfo get one captured at the call site of Error,
// so every response still has an id.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	info, ok := errinfo.From(err)
	if !ok {
		info = errinfo.Here(severity.Error, 1)
	}
	WriteError(w, r, StatusOf(err), err, info)
}

type statusCoder interface {
	HTTPStatus() int
}

// StatusOf returns the status an error asks for through an HTTPStatus() int
// method anywhere in its chain, or 500.
func StatusOf(err error) int {
	var sc statusCoder
	if errors.As(err, &sc) {
		if st := sc.HTTPStatus(); st >= 100 && st <= 999 {
			return st
		}
	}
	return http.StatusInternalServerError
}
