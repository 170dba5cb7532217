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

// Package severity provides parsing, normalization and validation for the
// severity labels attached to errinfo capture sites.
//
// A severity names the intent of a capture call: errinfo.Info, errinfo.Warn,
// errinfo.Error, errinfo.Debug and errinfo.Trace all produce the same kind
// of ErrorInfo and differ only in the label recorded for logs and metrics.
//
// Labels are lowercase, fixed, and safe to use as Prometheus label values.
package severity
