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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// HttpRequest describes a single outbound call. Name identifies the operation
// in logs and error messages.
type HttpRequest struct {
	Name    string
	URL     string
	Method  string
	Headers map[string]string
	Query   map[string]string
	Body    []byte

	buildErr error
}

// SetHeader sets a request header.
func (r *HttpRequest) SetHeader(key, value string) *HttpRequest {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

// SetQueryParam sets a query string parameter.
func (r *HttpRequest) SetQueryParam(key, value string) *HttpRequest {
	if r.Query == nil {
		r.Query = make(map[string]string)
	}
	r.Query[key] = value
	return r
}

// SetJson marshals body as the JSON request payload.
func (r *HttpRequest) SetJson(body any) *HttpRequest {
	data, err := json.Marshal(body)
	if err != nil {
		r.buildErr = fmt.Errorf("failed to marshal request body: %w", err)
		return r
	}
	r.Body = data
	return r.SetHeader("Content-Type", "application/json")
}

func (r *HttpRequest) buildHttpRequest(ctx context.Context) (*http.Request, error) {
	if r.buildErr != nil {
		return nil, r.buildErr
	}
	target, err := url.Parse(r.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", r.URL, err)
	}
	if len(r.Query) > 0 {
		q := target.Query()
		for k, v := range r.Query {
			q.Set(k, v)
		}
		target.RawQuery = q.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, err
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	return req, nil
}
