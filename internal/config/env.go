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

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/zeromicro/go-zero/core/logx"
)

// LoadEnv loads ".env" and then ".env.<APP_ENV>" from the working
// directory, overriding existing variables. Missing files are logged and
// skipped.
func LoadEnv() {
	if err := godotenv.Overload(); err != nil {
		logx.Infof("load .env skipped: %v", err)
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
		logx.Infof("APP_ENV not set, defaulting to: %s", env)
	}

	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Overload(envFile); err != nil {
		logx.Infof("load %s skipped: %v", envFile, err)
	}
}
