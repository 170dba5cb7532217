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

package handler

import (
	"net/http"
	"sync"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/httpx"
	zhttpx "github.com/zeromicro/go-zero/rest/httpx"
)

// UserNotFoundError is returned when a user id is unknown.
type UserNotFoundError struct {
	Info errinfo.ErrorInfo
	ID   string
}

func (e *UserNotFoundError) Error() string                { return "user " + e.ID + " not found" }
func (e *UserNotFoundError) ErrorInfo() errinfo.ErrorInfo { return e.Info }
func (e *UserNotFoundError) HTTPStatus() int              { return http.StatusNotFound }

// UserStore is an in-memory user directory.
type UserStore struct {
	mu    sync.RWMutex
	names map[string]string
}

// NewUserStore copies names into a new store.
func NewUserStore(names map[string]string) *UserStore {
	m := make(map[string]string, len(names))
	for k, v := range names {
		m[k] = v
	}
	return &UserStore{names: m}
}

// Get returns the name of user id.
func (s *UserStore) Get(id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name, ok := s.names[id]
	if !ok {
		return "", &UserNotFoundError{Info: errinfo.Info(), ID: id}
	}
	return name, nil
}

type userRequest struct {
	ID string `path:"id"`
}

type userResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GetUserHandler serves GET /users/:id.
func GetUserHandler(users *UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userRequest
		if err := zhttpx.Parse(r, &req); err != nil {
			httpx.WriteError(w, r, http.StatusBadRequest, err, errinfo.Warn())
			return
		}

		name, err := users.Get(req.ID)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		zhttpx.OkJsonCtx(r.Context(), w, userResponse{ID: req.ID, Name: name})
	}
}
