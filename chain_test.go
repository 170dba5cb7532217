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

package errinfo_test

import (
	"errors"
	"testing"

	"dirpx.dev/errinfo"
)

var errSomeBase = errors.New("some base error")

// chainError is a caller-defined error type that carries an ErrorInfo.
type chainError struct {
	info  errinfo.ErrorInfo
	cause error
}

func (e *chainError) Error() string {
	if e.cause != nil {
		return "this error happened somewhere"
	}
	return "this error happened here"
}

func (e *chainError) Unwrap() error { return e.cause }

func (e *chainError) ErrorInfo() errinfo.ErrorInfo { return e.info }

func function1(v uint32) (uint32, error) {
	v, err := function2(v)
	if err != nil {
		return 0, err
	}
	v--
	if v == 0 {
		return 0, &chainError{info: errinfo.Info()}
	}
	return v, nil
}

func function2(v uint32) (uint32, error) {
	v, err := function3(v)
	if err != nil {
		return 0, &chainError{info: errinfo.Info(), cause: err}
	}
	v--
	if v == 0 {
		return 0, &chainError{info: errinfo.Info()}
	}
	return v, nil
}

func function3(v uint32) (uint32, error) {
	v--
	if v == 0 {
		return 0, errSomeBase
	}
	return v, nil
}

func TestCallChain_BranchDecidesMessageAndLocation(t *testing.T) {
	file := thisFile(t)

	tests := []struct {
		name    string
		in      uint32
		wantMsg string
		line    uint32
		col     uint32
		wrapped bool
	}{
		{"deepest fails, middle wraps", 1, "this error happened somewhere", 60, 31, true},
		{"middle raises", 2, "this error happened here", 64, 31, false},
		{"outer raises", 3, "this error happened here", 52, 31, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := function1(tt.in)
			if err == nil {
				t.Fatalf("function1(%d) returned no error", tt.in)
			}
			if err.Error() != tt.wantMsg {
				t.Fatalf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
			if got := errors.Is(err, errSomeBase); got != tt.wrapped {
				t.Fatalf("errors.Is(err, errSomeBase) = %v, want %v", got, tt.wrapped)
			}

			info, ok := errinfo.From(err)
			if !ok {
				t.Fatal("error must carry an ErrorInfo")
			}
			want := errinfo.Location{File: file, Line: tt.line, Column: tt.col}
			if info.Location != want {
				t.Fatalf("Location = %+v, want %+v", info.Location, want)
			}
		})
	}

	if _, err := function1(4); err != nil {
		t.Fatalf("function1(4) unexpected error: %v", err)
	}
}
