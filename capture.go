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
	"runtime"
	"strings"

	"dirpx.dev/errinfo/internal/metrics"
	"dirpx.dev/errinfo/severity"
	"github.com/zeromicro/go-zero/core/logx"
)

// Info captures an ErrorInfo at the call site of Info.
func Info() ErrorInfo { return here(severity.Info, 0) }

// Warn captures an ErrorInfo at the call site of Warn.
func Warn() ErrorInfo { return here(severity.Warn, 0) }

// Error captures an ErrorInfo at the call site of Error.
func Error() ErrorInfo { return here(severity.Error, 0) }

// Debug captures an ErrorInfo at the call site of Debug.
func Debug() ErrorInfo { return here(severity.Debug, 0) }

// Trace captures an ErrorInfo at the call site of Trace.
func Trace() ErrorInfo { return here(severity.Trace, 0) }

// Here is the shared implementation of the capture entry points, exported
// for helpers that capture on behalf of their callers.
//
// With skip 0 the location is the call site of Here itself. Each additional
// skip moves one frame up: a helper Fail that calls Here(sev, 1) records
// where Fail was called.
func Here(sev severity.Severity, skip int) ErrorInfo {
	return here(sev, skip)
}

func here(sev severity.Severity, skip int) ErrorInfo {
	cfg := loadConfig()

	// 0 is runtime.Callers, 1 is here, 2 is the entry point that was
	// called, 3 is the call site we want.
	var pcs [8]uintptr
	n := runtime.Callers(2+skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var loc Location
	callee, more := frames.Next()
	if more {
		site, _ := frames.Next()
		loc.File = site.File
		loc.Line = uint32(site.Line)
		if cfg.resolveColumns {
			loc.Column = columns.resolve(site.File, site.Line, funcName(callee.Function))
		}
	}
	return capture(cfg, sev, loc)
}

func capture(cfg *config, sev severity.Severity, loc Location) ErrorInfo {
	info := ErrorInfo{
		ErrorID:  NextID(),
		Location: loc,
	}
	metrics.IncCapture(sev.String())
	if cfg.captureLogging {
		logCapture(sev, info)
	}
	return info
}

func logCapture(sev severity.Severity, info ErrorInfo) {
	const msg = "collecting error information"
	fields := append(info.LogFields(), logx.Field("severity", sev.String()))
	switch sev {
	case severity.Error:
		logx.Errorw(msg, fields...)
	case severity.Debug, severity.Trace:
		logx.Debugw(msg, fields...)
	default:
		logx.Infow(msg, fields...)
	}
}

// funcName reduces a runtime function name to the identifier that appears
// at its call sites, e.g. "dirpx.dev/errinfo.Info" to "Info" and
// "example.com/x.(*T[...]).Fail" to "Fail".
func funcName(full string) string {
	full = strings.ReplaceAll(full, "[...]", "")
	if i := strings.LastIndexByte(full, '.'); i >= 0 {
		full = full[i+1:]
	}
	return full
}
