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

package models

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// TaskStatuses lists the statuses the task service accepts, in board order.
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}

// ParseTaskStatus normalizes s and checks it against the known statuses.
func ParseTaskStatus(s string) (TaskStatus, error) {
	candidate := TaskStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, status := range TaskStatuses {
		if candidate == status {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown task status %q, expected one of todo, in-progress, done", s)
}

// Task is a single item on the user's task list.
type Task struct {
	ID        ID         `json:"id"`
	Title     string     `json:"title"`
	Status    TaskStatus `json:"status"`
	UserID    ID         `json:"user_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at,omitempty"`
}
