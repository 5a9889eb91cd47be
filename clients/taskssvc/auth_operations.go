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

package taskssvc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wso2/tasklist-client/clients/requests"
	"github.com/wso2/tasklist-client/models"
	"github.com/wso2/tasklist-client/utils"
)

func (c *tasksSvcClient) Register(ctx context.Context, creds Credentials) (*models.User, error) {
	req := c.newRequest("taskssvc.Register", http.MethodPost, RegisterPath)
	req.SetJson(creds)

	var resp envelope[*registerData]
	if err := requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&resp, http.StatusOK, http.StatusCreated); err != nil {
		return nil, fmt.Errorf("taskssvc.Register: %w", err)
	}
	if resp.Data == nil {
		return nil, nil
	}
	return resp.Data.User, nil
}

func (c *tasksSvcClient) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	req := c.newRequest("taskssvc.Login", http.MethodPost, LoginPath)
	req.SetJson(creds)

	var resp loginResponse
	if err := requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&resp); err != nil {
		return nil, fmt.Errorf("taskssvc.Login: %w", err)
	}
	result := resp.result()
	if result.Token == "" {
		return nil, fmt.Errorf("taskssvc.Login: %w", utils.ErrNoTokenReceived)
	}
	return &result, nil
}

func (c *tasksSvcClient) GetMe(ctx context.Context) (*models.User, error) {
	req := c.newRequest("taskssvc.GetMe", http.MethodGet, MePath)

	var resp envelope[userData]
	if err := requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&resp, http.StatusOK); err != nil {
		return nil, fmt.Errorf("taskssvc.GetMe: %w", err)
	}
	if resp.Data.User == nil {
		return nil, fmt.Errorf("taskssvc.GetMe: response carried no user")
	}
	return resp.Data.User, nil
}
