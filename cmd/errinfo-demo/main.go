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

package main

import (
	"flag"
	"fmt"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/httpx"
	"dirpx.dev/errinfo/internal/config"
	"dirpx.dev/errinfo/internal/handler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/errinfo-demo.yaml", "the config file")

func main() {
	flag.Parse()

	config.LoadEnv()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	errinfo.Configure(c.Errinfo.Options()...)
	errinfo.RegisterMetrics(prometheus.DefaultRegisterer)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	server.Use(httpx.Middleware)
	handler.RegisterHandlers(server, c)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
