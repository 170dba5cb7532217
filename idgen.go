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
	"sync"

	"github.com/google/uuid"
)

// idGen produces random error ids. There is exactly one per process,
// created on first use.
type idGen struct {
	newID func() string
}

var generator = sync.OnceValue(func() *idGen {
	return &idGen{newID: uuid.NewString}
})

// NextID returns a new random identifier: a version 4 UUID in its canonical
// 36-character form. It is safe for concurrent use.
func NextID() string {
	if src := loadConfig().idSource; src != nil {
		return src()
	}
	return generator().newID()
}
