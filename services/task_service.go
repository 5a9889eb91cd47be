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
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wso2/tasklist-client/clients/requests"
	"github.com/wso2/tasklist-client/clients/taskssvc"
	"github.com/wso2/tasklist-client/models"
	"github.com/wso2/tasklist-client/utils"
)

// Messages shown when loading the dashboard fails.
const (
	SessionExpiredMessage = "Session expired. Please login again."
	LoadFailedMessage     = "Failed to load data"
)

// Dashboard is the signed-in user together with their tasks.
type Dashboard struct {
	User  *models.User  `json:"user"`
	Tasks []models.Task `json:"tasks"`
}

// TaskService defines the task operations of the client
type TaskService interface {
	LoadDashboard(ctx context.Context) (*Dashboard, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, taskID string) (*models.Task, error)
	CreateTask(ctx context.Context, title string) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID string, status string) (*models.Task, error)
}

type taskService struct {
	logger         *slog.Logger
	tasksSvcClient taskssvc.TasksSvcClient
}

// NewTaskService creates a new task service
func NewTaskService(logger *slog.Logger, tasksSvcClient taskssvc.TasksSvcClient) TaskService {
	return &taskService{
		logger:         logger,
		tasksSvcClient: tasksSvcClient,
	}
}

// LoadDashboard fetches the user and the task list concurrently. Either
// failure fails the whole load.
func (s *taskService) LoadDashboard(ctx context.Context) (*Dashboard, error) {
	var dashboard Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user, err := s.tasksSvcClient.GetMe(gctx)
		if err != nil {
			return err
		}
		dashboard.User = user
		return nil
	})
	g.Go(func() error {
		tasks, err := s.tasksSvcClient.ListTasks(gctx)
		if err != nil {
			return err
		}
		dashboard.Tasks = tasks
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to load dashboard", "error", err)
		return nil, loadError(err)
	}
	s.logger.Debug("Loaded dashboard", "tasks", len(dashboard.Tasks))
	return &dashboard, nil
}

func (s *taskService) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.tasksSvcClient.ListTasks(ctx)
	if err != nil {
		s.logger.Error("Failed to list tasks", "error", err)
		return nil, loadError(err)
	}
	return tasks, nil
}

func (s *taskService) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return nil, utils.NewUserError("Task id is required", utils.ErrInvalidInput)
	}
	task, err := s.tasksSvcClient.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, utils.ErrTaskNotFound) {
			return nil, utils.NewUserError(requests.ErrorMessage(err, "Task not found"), err)
		}
		return nil, loadError(err)
	}
	return task, nil
}

func (s *taskService) CreateTask(ctx context.Context, title string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, utils.NewUserError("Task title is required", utils.ErrInvalidInput)
	}

	task, err := s.tasksSvcClient.CreateTask(ctx, taskssvc.CreateTaskRequest{
		Title:  title,
		Status: models.TaskStatusTodo,
	})
	if err != nil {
		s.logger.Error("Failed to create task", "title", title, "error", err)
		return nil, utils.NewUserError(requests.ErrorMessage(err, "Failed to create task"), err)
	}
	s.logger.Info("Created task", "taskId", task.ID)
	return task, nil
}

func (s *taskService) UpdateTaskStatus(ctx context.Context, taskID string, status string) (*models.Task, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return nil, utils.NewUserError("Task id is required", utils.ErrInvalidInput)
	}
	parsed, err := models.ParseTaskStatus(status)
	if err != nil {
		return nil, utils.NewUserError(err.Error(), utils.ErrInvalidInput)
	}

	task, err := s.tasksSvcClient.UpdateTaskStatus(ctx, taskID, parsed)
	if err != nil {
		s.logger.Error("Failed to update task status", "taskId", taskID, "status", parsed, "error", err)
		return nil, utils.NewUserError(requests.ErrorMessage(err, "Failed to update status"), err)
	}
	if task == nil {
		// the service acknowledged without echoing the task
		task = &models.Task{ID: models.ID(taskID), Status: parsed}
	}
	s.logger.Info("Updated task status", "taskId", taskID, "status", parsed)
	return task, nil
}

func loadError(err error) error {
	if errors.Is(err, utils.ErrUnauthorized) {
		return utils.NewUserError(SessionExpiredMessage, err)
	}
	return utils.NewUserError(LoadFailedMessage, err)
}
