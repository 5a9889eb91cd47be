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
	"net/url"

	"github.com/wso2/tasklist-client/clients/requests"
	"github.com/wso2/tasklist-client/models"
	"github.com/wso2/tasklist-client/utils"
)

func (c *tasksSvcClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	req := c.newRequest("taskssvc.ListTasks", http.MethodGet, TasksPath)

	var resp envelope[tasksData]
	if err := requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&resp, http.StatusOK); err != nil {
		return nil, fmt.Errorf("taskssvc.ListTasks: %w", err)
	}
	if resp.Data.Tasks == nil {
		return []models.Task{}, nil
	}
	return resp.Data.Tasks, nil
}

func (c *tasksSvcClient) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	req := c.newRequest("taskssvc.GetTask", http.MethodGet, taskPath(taskID))

	var resp envelope[taskData]
	if err := requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&resp, http.StatusOK); err != nil {
		return nil, fmt.Errorf("taskssvc.GetTask: %w", notFound(err))
	}
	if resp.Data.Task == nil {
		return nil, fmt.Errorf("taskssvc.GetTask: %w", utils.ErrTaskNotFound)
	}
	return resp.Data.Task, nil
}

func (c *tasksSvcClient) CreateTask(ctx context.Context, body CreateTaskRequest) (*models.Task, error) {
	req := c.newRequest("taskssvc.CreateTask", http.MethodPost, TasksPath)
	req.SetJson(body)

	var resp envelope[taskData]
	if err := requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&resp, http.StatusOK, http.StatusCreated); err != nil {
		return nil, fmt.Errorf("taskssvc.CreateTask: %w", err)
	}
	if resp.Data.Task == nil {
		return nil, fmt.Errorf("taskssvc.CreateTask: response carried no task")
	}
	return resp.Data.Task, nil
}

// UpdateTaskStatus changes the status of a task. The returned task is nil
// when the service acknowledges the change without echoing the task.
func (c *tasksSvcClient) UpdateTaskStatus(ctx context.Context, taskID string, status models.TaskStatus) (*models.Task, error) {
	req := c.newRequest("taskssvc.UpdateTaskStatus", http.MethodPatch, taskPath(taskID))
	req.SetJson(updateStatusRequest{Status: status})

	var resp envelope[*taskData]
	if err := requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&resp, http.StatusOK); err != nil {
		return nil, fmt.Errorf("taskssvc.UpdateTaskStatus: %w", notFound(err))
	}
	if resp.Data == nil {
		return nil, nil
	}
	return resp.Data.Task, nil
}

func taskPath(taskID string) string {
	return TasksPath + "/" + url.PathEscape(taskID)
}

// notFound wraps 404 responses with utils.ErrTaskNotFound; the HttpError
// remains reachable through errors.As.
func notFound(err error) error {
	if requests.StatusCode(err) == http.StatusNotFound {
		return fmt.Errorf("%w: %w", utils.ErrTaskNotFound, err)
	}
	return err
}
