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

// Package config holds the configuration of the errinfo demo server.
package config

import (
	"dirpx.dev/errinfo"
	"github.com/zeromicro/go-zero/rest"
)

// Config is loaded with go-zero conf from a YAML file; ${VAR} references
// are expanded from the environment.
type Config struct {
	rest.RestConf

	Errinfo ErrinfoConf
}

// ErrinfoConf configures the capture service.
type ErrinfoConf struct {
	// CaptureLogging logs every capture, not only formatted responses.
	CaptureLogging bool `json:",default=false"`

	// ResolveColumns parses sources to fill Location.Column.
	ResolveColumns bool `json:",default=true"`

	// MetricsPath serves the Prometheus registry when non-empty.
	MetricsPath string `json:",optional"`
}

// Options converts the section into errinfo options.
func (c ErrinfoConf) Options() []errinfo.Option {
	return []errinfo.Option{
		errinfo.WithCaptureLogging(c.CaptureLogging),
		errinfo.WithColumnResolution(c.ResolveColumns),
	}
}
