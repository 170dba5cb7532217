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

import "sync/atomic"

// config is the process-wide capture configuration. It is replaced as a
// whole by Configure and read without locks.
type config struct {
	// captureLogging emits one log line per capture.
	captureLogging bool

	// resolveColumns parses caller sources to fill Location.Column.
	resolveColumns bool

	// idSource replaces the random id generator when non-nil.
	idSource func() string
}

var current atomic.Pointer[config]

func init() {
	current.Store(defaultConfig())
}

func defaultConfig() *config {
	return &config{
		captureLogging: false,
		resolveColumns: true,
	}
}

func loadConfig() *config {
	return current.Load()
}

// Option is a functional option for Configure.
type Option func(*config)

// Configure resets the process-wide configuration to its defaults and
// applies opts in order. It is safe to call concurrently with captures;
// a capture sees either the old or the new configuration.
func Configure(opts ...Option) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	current.Store(cfg)
}

// WithCaptureLogging enables or disables the capture-time log line. It is
// disabled by default; the transport formatters always log.
func WithCaptureLogging(enabled bool) Option {
	return func(c *config) {
		c.captureLogging = enabled
	}
}

// WithColumnResolution enables or disables source parsing for columns.
// When disabled, implicit captures report column 0.
//
// The first capture in each source file reads and parses that file on the
// capturing goroutine; later captures in the file use the cached result.
// PreloadColumns moves that cost to startup.
func WithColumnResolution(enabled bool) Option {
	return func(c *config) {
		c.resolveColumns = enabled
	}
}

// WithIDSource replaces the id generator. It exists for tests that need
// predictable ids; production code should keep the random default.
// A nil source restores the default.
func WithIDSource(src func() string) Option {
	return func(c *config) {
		c.idSource = src
	}
}
