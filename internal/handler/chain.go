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

package handler

import (
	"errors"
	"net/http"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/httpx"
	zhttpx "github.com/zeromicro/go-zero/rest/httpx"
)

// ErrBase is the failure of the innermost step of the chain.
var ErrBase = errors.New("some base error")

// ChainError is raised by the two outer steps of the chain. It reads
// "this error happened somewhere" when it wraps a failure from below and
// "this error happened here" when the step itself failed.
type ChainError struct {
	Info  errinfo.ErrorInfo
	Cause error
}

func (e *ChainError) Error() string {
	if e.Cause != nil {
		return "this error happened somewhere"
	}
	return "this error happened here"
}

func (e *ChainError) Unwrap() error                { return e.Cause }
func (e *ChainError) ErrorInfo() errinfo.ErrorInfo { return e.Info }
func (e *ChainError) HTTPStatus() int              { return http.StatusUnprocessableEntity }

// RunChain counts depth down through three nested steps. Each step
// subtracts one and fails when it reaches zero: depth 1 fails in the
// innermost step, 2 in the middle one, 3 in the outer one.
func RunChain(depth uint32) (uint32, error) {
	v, err := chainMiddle(depth)
	if err != nil {
		return 0, err
	}
	v--
	if v == 0 {
		return 0, &ChainError{Info: errinfo.Info()}
	}
	return v, nil
}

func chainMiddle(v uint32) (uint32, error) {
	v, err := chainInner(v)
	if err != nil {
		return 0, &ChainError{Info: errinfo.Info(), Cause: err}
	}
	v--
	if v == 0 {
		return 0, &ChainError{Info: errinfo.Info()}
	}
	return v, nil
}

func chainInner(v uint32) (uint32, error) {
	if v == 0 {
		return 0, ErrBase
	}
	v--
	if v == 0 {
		return 0, ErrBase
	}
	return v, nil
}

type chainRequest struct {
	Depth uint32 `path:"depth"`
}

type chainResponse struct {
	Left uint32 `json:"left"`
}

// ChainHandler serves GET /chain/:depth.
func ChainHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chainRequest
		if err := zhttpx.Parse(r, &req); err != nil {
			httpx.WriteError(w, r, http.StatusBadRequest, err, errinfo.Warn())
			return
		}

		left, err := RunChain(req.Depth)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		zhttpx.OkJsonCtx(r.Context(), w, chainResponse{Left: left})
	}
}
