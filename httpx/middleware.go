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

package httpx

import (
	"net/http"

	"dirpx.dev/errinfo"
	"github.com/zeromicro/go-zero/core/logx"
)

// InfoWriter is an http.ResponseWriter that records the status and the
// ErrorInfo attached by Response.Write, so that the middleware that
// installed it can read them after the handler returns.
type InfoWriter struct {
	http.ResponseWriter

	status int
	info   errinfo.ErrorInfo
	has    bool
}

// NewInfoWriter wraps w.
func NewInfoWriter(w http.ResponseWriter) *InfoWriter {
	return &InfoWriter{ResponseWriter: w}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *InfoWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

func (w *InfoWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *InfoWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(p)
}

// Status returns the status written so far, or 0.
func (w *InfoWriter) Status() int { return w.status }

// ErrorInfo returns the attached info, if any response attached one.
func (w *InfoWriter) ErrorInfo() (errinfo.ErrorInfo, bool) {
	return w.info, w.has
}

// ErrorInfoFrom returns the ErrorInfo attached to w, looking through writers
// that implement Unwrap() http.ResponseWriter.
func ErrorInfoFrom(w http.ResponseWriter) (errinfo.ErrorInfo, bool) {
	if iw := findInfoWriter(w); iw != nil {
		return iw.ErrorInfo()
	}
	return errinfo.ErrorInfo{}, false
}

// Middleware records the ErrorInfo of error responses and writes one access
// log line per failed request. It has the shape of a go-zero rest.Middleware.
func Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		iw := NewInfoWriter(w)
		next(iw, r)

		info, ok := iw.ErrorInfo()
		if !ok {
			return
		}
		fields := append(info.LogFields(),
			logx.Field("method", r.Method),
			logx.Field("path", r.URL.Path),
			logx.Field("status", iw.Status()),
		)
		logx.WithContext(r.Context()).Infow("request failed", fields...)
	}
}

// attach sets info on every InfoWriter in w's wrapper chain, so nested
// middlewares all see it.
func attach(w http.ResponseWriter, info errinfo.ErrorInfo) {
	for w != nil {
		switch t := w.(type) {
		case *InfoWriter:
			t.info = info
			t.has = true
			w = t.ResponseWriter
		case interface{ Unwrap() http.ResponseWriter }:
			w = t.Unwrap()
		default:
			return
		}
	}
}

func findInfoWriter(w http.ResponseWriter) *InfoWriter {
	for w != nil {
		switch t := w.(type) {
		case *InfoWriter:
			return t
		case interface{ Unwrap() http.ResponseWriter }:
			w = t.Unwrap()
		default:
			return nil
		}
	}
	return nil
}
