// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/wso2/tasklist-client/utils"
)

// HttpError is returned when a response carries an unexpected status.
type HttpError struct {
	StatusCode int
	Body       string
}

func (e *HttpError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Is maps well known statuses onto the sentinel errors in utils.
func (e *HttpError) Is(target error) bool {
	switch target {
	case utils.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case utils.ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest
	case utils.ErrServiceUnavailable:
		return e.StatusCode == http.StatusServiceUnavailable
	}
	return false
}

type errorEnvelope struct {
	Message string `json:"message"`
	Errors  []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Message returns the human readable reason given by the server. Field level
// validation messages take precedence over the top level message.
func (e *HttpError) Message() string {
	var env errorEnvelope
	if err := json.Unmarshal([]byte(e.Body), &env); err == nil {
		msgs := make([]string, 0, len(env.Errors))
		for _, fieldErr := range env.Errors {
			if fieldErr.Message != "" {
				msgs = append(msgs, fieldErr.Message)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, ", ")
		}
		if env.Message != "" {
			return env.Message
		}
		return ""
	}
	return strings.TrimSpace(e.Body)
}

// StatusCode returns the HTTP status carried by err, or 0 if err did not come
// from a response.
func StatusCode(err error) int {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// ErrorMessage returns the server supplied message for err, falling back to
// fallback when the server gave none.
func ErrorMessage(err error, fallback string) string {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		if msg := httpErr.Message(); msg != "" {
			return msg
		}
	}
	return fallback
}
