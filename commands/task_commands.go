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

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/wso2/tasklist-client/navigation"
)

func (a *App) tasksCommand() *Command {
	return &Command{
		Name:    "tasks",
		Summary: "List and manage tasks",
		Subcommands: []*Command{
			{
				Name:    "list",
				Summary: "Show the dashboard: the signed in user and their tasks",
				Run:     a.guarded(a.listTasks),
			},
			{
				Name:    "get",
				Summary: "Show a single task",
				Usage:   "tasklist tasks get <id>",
				Run:     a.guarded(a.getTask),
			},
			{
				Name:    "create",
				Summary: "Create a task in the todo column",
				Usage:   "tasklist tasks create <title...>",
				Run:     a.guarded(a.createTask),
			},
			{
				Name:    "status",
				Summary: "Move a task to todo, in-progress or done",
				Usage:   "tasklist tasks status <id> <todo|in-progress|done>",
				Run:     a.guarded(a.updateTaskStatus),
			},
		},
	}
}

// guarded runs fn only while a valid session is stored.
func (a *App) guarded(fn func(ctx context.Context, args []string) error) func(ctx context.Context, args []string) error {
	return func(ctx context.Context, args []string) error {
		a.enter(navigation.DashboardPath)
		if err := a.Auth.RequireSession(ctx); err != nil {
			return err
		}
		return fn(ctx, args)
	}
}

func (a *App) listTasks(ctx context.Context, args []string) error {
	dashboard, err := a.Tasks.LoadDashboard(ctx)
	if err != nil {
		return err
	}
	return a.printer().dashboard(dashboard)
}

func (a *App) getTask(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one task id")
	}
	task, err := a.Tasks.GetTask(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printer().task(task)
}

func (a *App) createTask(ctx context.Context, args []string) error {
	task, err := a.Tasks.CreateTask(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	return a.printer().task(task)
}

func (a *App) updateTaskStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected a task id and a status")
	}
	task, err := a.Tasks.UpdateTaskStatus(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return a.printer().task(task)
}
