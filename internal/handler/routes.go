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

// Package handler serves the errinfo demo endpoints.
package handler

import (
	"net/http"

	"dirpx.dev/errinfo/internal/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zeromicro/go-zero/rest"
)

// RegisterHandlers adds the demo routes to server.
func RegisterHandlers(server *rest.Server, c config.Config) {
	users := NewUserStore(map[string]string{
		"1": "ada",
		"2": "grace",
	})

	server.AddRoutes([]rest.Route{
		{
			Method:  http.MethodGet,
			Path:    "/users/:id",
			Handler: GetUserHandler(users),
		},
		{
			Method:  http.MethodGet,
			Path:    "/chain/:depth",
			Handler: ChainHandler(),
		},
	})

	if c.Errinfo.MetricsPath != "" {
		server.AddRoute(rest.Route{
			Method:  http.MethodGet,
			Path:    c.Errinfo.MetricsPath,
			Handler: promhttp.Handler().ServeHTTP,
		})
	}
}
