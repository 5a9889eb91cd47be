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
	"fmt"
	"net/http"
)

// RequestStage edits an outbound request before it is sent. Returning an
// error aborts the call.
type RequestStage func(req *http.Request) error

// ResponseStage inspects the outcome of a call. It receives the response or
// transport error of the previous stage and returns the outcome for the next.
type ResponseStage func(req *http.Request, resp *http.Response, err error) (*http.Response, error)

// Pipeline is an HttpClient that runs ordered request stages before and
// response stages after delegating to the wrapped client. It never retries;
// retry policy belongs to the wrapped client or to the caller.
type Pipeline struct {
	next           HttpClient
	requestStages  []RequestStage
	responseStages []ResponseStage
}

var _ HttpClient = (*Pipeline)(nil)

// NewPipeline wraps next. A nil next selects http.DefaultClient.
func NewPipeline(next HttpClient) *Pipeline {
	if next == nil {
		next = http.DefaultClient
	}
	return &Pipeline{next: next}
}

// UseRequestStage appends stages to the outbound phase.
func (p *Pipeline) UseRequestStage(stages ...RequestStage) *Pipeline {
	p.requestStages = append(p.requestStages, stages...)
	return p
}

// UseResponseStage appends stages to the inbound phase.
func (p *Pipeline) UseResponseStage(stages ...ResponseStage) *Pipeline {
	p.responseStages = append(p.responseStages, stages...)
	return p
}

// Do runs the stages around a single call. The caller's request is not
// modified; stages operate on a clone.
func (p *Pipeline) Do(req *http.Request) (*http.Response, error) {
	outbound := req.Clone(req.Context())
	for _, stage := range p.requestStages {
		if err := stage(outbound); err != nil {
			return nil, fmt.Errorf("request stage failed: %w", err)
		}
	}

	resp, err := p.next.Do(outbound)
	for _, stage := range p.responseStages {
		resp, err = stage(outbound, resp, err)
	}
	return resp, err
}
