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

import "github.com/wso2/tasklist-client/models"

// envelope is the response wrapper used by every task service endpoint.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// Credentials is the body of the login and register calls.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is what a successful login yields.
type LoginResult struct {
	Token string
	User  *models.User
}

type loginData struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

// loginResponse accepts the token either inside data or at the top level.
type loginResponse struct {
	envelope[*loginData]
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

func (r loginResponse) result() LoginResult {
	out := LoginResult{Token: r.Token, User: r.User}
	if r.Data != nil {
		if r.Data.Token != "" {
			out.Token = r.Data.Token
		}
		if r.Data.User != nil {
			out.User = r.Data.User
		}
	}
	return out
}

type registerData struct {
	User *models.User `json:"user,omitempty"`
}

type userData struct {
	User *models.User `json:"user"`
}

type tasksData struct {
	Tasks []models.Task `json:"tasks"`
}

type taskData struct {
	Task *models.Task `json:"task"`
}

// CreateTaskRequest is the body of the create call.
type CreateTaskRequest struct {
	Title  string            `json:"title"`
	Status models.TaskStatus `json:"status"`
}

type updateStatusRequest struct {
	Status models.TaskStatus `json:"status"`
}
