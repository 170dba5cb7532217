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

// Package metrics holds the Prometheus collectors shared by the capture
// service and the transport formatters.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Captures counts ErrorInfo captures, labeled by the severity of the
	// capture site ("info", "warn", "error", "debug", "trace", or "none" for
	// explicit Capture calls).
	Captures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "errinfo",
			Name:      "captures_total",
			Help:      "Number of captured error infos by capture severity.",
		},
		[]string{"severity"},
	)

	// HTTPResponses counts formatted HTTP error responses by status code.
	HTTPResponses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "errinfo",
			Name:      "http_responses_total",
			Help:      "Number of formatted HTTP error responses by status code.",
		},
		[]string{"status"},
	)

	// GRPCStatuses counts formatted gRPC error statuses by code name.
	GRPCStatuses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "errinfo",
			Name:      "grpc_statuses_total",
			Help:      "Number of formatted gRPC error statuses by code.",
		},
		[]string{"code"},
	)
)

// Collectors returns every collector of the module, for registration.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{Captures, HTTPResponses, GRPCStatuses}
}

// IncCapture records one capture.
func IncCapture(severity string) {
	if severity == "" {
		severity = "none"
	}
	Captures.WithLabelValues(severity).Inc()
}

// IncHTTPResponse records one formatted HTTP error response.
func IncHTTPResponse(status int) {
	HTTPResponses.WithLabelValues(strconv.Itoa(status)).Inc()
}

// IncGRPCStatus records one formatted gRPC status.
func IncGRPCStatus(code string) {
	GRPCStatuses.WithLabelValues(code).Inc()
}
