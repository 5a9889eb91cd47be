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

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/tasklist-client/clients/clientmocks"
	"github.com/wso2/tasklist-client/clients/requests"
	"github.com/wso2/tasklist-client/clients/taskssvc"
	"github.com/wso2/tasklist-client/models"
	"github.com/wso2/tasklist-client/utils"
)

func TestTaskServiceLoadDashboard(t *testing.T) {
	t.Run("Loads user and tasks", func(t *testing.T) {
		client := &clientmocks.TasksSvcClientMock{
			GetMeFunc: func(ctx context.Context) (*models.User, error) {
				return &models.User{ID: "1", Email: "ada@example.test"}, nil
			},
			ListTasksFunc: func(ctx context.Context) ([]models.Task, error) {
				return []models.Task{{ID: "1", Title: "a", Status: models.TaskStatusTodo}}, nil
			},
		}
		service := NewTaskService(discardLogger, client)

		dashboard, err := service.LoadDashboard(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "ada@example.test", dashboard.User.Email)
		assert.Len(t, dashboard.Tasks, 1)
		assert.Len(t, client.GetMeCalls(), 1)
		assert.Len(t, client.ListTasksCalls(), 1)
	})

	t.Run("Unauthorized reads as expired session", func(t *testing.T) {
		client := &clientmocks.TasksSvcClientMock{
			GetMeFunc: func(ctx context.Context) (*models.User, error) {
				return nil, &requests.HttpError{StatusCode: 401}
			},
			ListTasksFunc: func(ctx context.Context) ([]models.Task, error) {
				return []models.Task{}, nil
			},
		}
		_, err := NewTaskService(discardLogger, client).LoadDashboard(t.Context())
		require.ErrorIs(t, err, utils.ErrUnauthorized)
		assert.Equal(t, SessionExpiredMessage, utils.UserMessage(err))
	})

	t.Run("Other failures read as load failure", func(t *testing.T) {
		client := &clientmocks.TasksSvcClientMock{
			GetMeFunc: func(ctx context.Context) (*models.User, error) {
				return &models.User{}, nil
			},
			ListTasksFunc: func(ctx context.Context) ([]models.Task, error) {
				return nil, errors.New("connection reset")
			},
		}
		_, err := NewTaskService(discardLogger, client).LoadDashboard(t.Context())
		require.Error(t, err)
		assert.Equal(t, LoadFailedMessage, utils.UserMessage(err))
	})
}

func TestTaskServiceCreateTask(t *testing.T) {
	t.Run("Trims title and starts as todo", func(t *testing.T) {
		client := &clientmocks.TasksSvcClientMock{
			CreateTaskFunc: func(ctx context.Context, req taskssvc.CreateTaskRequest) (*models.Task, error) {
				return &models.Task{ID: "9", Title: req.Title, Status: req.Status}, nil
			},
		}
		task, err := NewTaskService(discardLogger, client).CreateTask(t.Context(), "  Write docs  ")
		require.NoError(t, err)
		assert.Equal(t, "Write docs", task.Title)
		require.Len(t, client.CreateTaskCalls(), 1)
		assert.Equal(t, taskssvc.CreateTaskRequest{Title: "Write docs", Status: models.TaskStatusTodo}, client.CreateTaskCalls()[0].Req)
	})

	t.Run("Blank title is rejected locally", func(t *testing.T) {
		client := &clientmocks.TasksSvcClientMock{}
		_, err := NewTaskService(discardLogger, client).CreateTask(t.Context(), "   ")
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.Empty(t, client.CreateTaskCalls())
	})

	t.Run("Server message or fallback is surfaced", func(t *testing.T) {
		client := &clientmocks.TasksSvcClientMock{
			CreateTaskFunc: func(ctx context.Context, req taskssvc.CreateTaskRequest) (*models.Task, error) {
				return nil, &requests.HttpError{StatusCode: 500, Body: `{}`}
			},
		}
		_, err := NewTaskService(discardLogger, client).CreateTask(t.Context(), "a")
		assert.Equal(t, "Failed to create task", utils.UserMessage(err))
	})
}

func TestTaskServiceUpdateTaskStatus(t *testing.T) {
	t.Run("Unknown status is rejected locally", func(t *testing.T) {
		client := &clientmocks.TasksSvcClientMock{}
		_, err := NewTaskService(discardLogger, client).UpdateTaskStatus(t.Context(), "1", "blocked")
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.Empty(t, client.UpdateTaskStatusCalls())
	})

	t.Run("Acknowledgement without task echoes the change", func(t *testing.T) {
		client := &clientmocks.TasksSvcClientMock{
			UpdateTaskStatusFunc: func(ctx context.Context, taskID string, status models.TaskStatus) (*models.Task, error) {
				return nil, nil
			},
		}
		task, err := NewTaskService(discardLogger, client).UpdateTaskStatus(t.Context(), "4", " In-Progress ")
		require.NoError(t, err)
		assert.Equal(t, models.ID("4"), task.ID)
		assert.Equal(t, models.TaskStatusInProgress, task.Status)
		assert.Equal(t, models.TaskStatusInProgress, client.UpdateTaskStatusCalls()[0].Status)
	})

	t.Run("Missing task keeps the sentinel", func(t *testing.T) {
		client := &clientmocks.TasksSvcClientMock{
			GetTaskFunc: func(ctx context.Context, taskID string) (*models.Task, error) {
				return nil, utils.ErrTaskNotFound
			},
		}
		_, err := NewTaskService(discardLogger, client).GetTask(t.Context(), "77")
		assert.ErrorIs(t, err, utils.ErrTaskNotFound)
		assert.Equal(t, "Task not found", utils.UserMessage(err))
	})
}
