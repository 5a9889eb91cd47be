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
	"io"

	"github.com/wso2/tasklist-client/navigation"
	"github.com/wso2/tasklist-client/services"
)

// App holds what the commands need to run.
type App struct {
	Auth      services.AuthService
	Tasks     services.TaskService
	Navigator navigation.Navigator
	Prompter  Prompter
	Output    OutputFormat
	Stdout    io.Writer
	Stderr    io.Writer

	// surface is the location the running command entered.
	surface string
}

// Run executes the command named by args.
func (a *App) Run(ctx context.Context, args []string) error {
	return a.RootCommand().Execute(ctx, a.Stderr, args)
}

// RootCommand builds the tasklist command tree.
func (a *App) RootCommand() *Command {
	return &Command{
		Name:    "tasklist",
		Summary: "Command line client for the task service",
		Subcommands: []*Command{
			a.loginCommand(),
			a.registerCommand(),
			a.logoutCommand(),
			a.whoamiCommand(),
			a.sessionCommand(),
			a.tasksCommand(),
		},
	}
}

// RedirectedToLogin reports whether the last command was sent to the login
// surface from somewhere else, either by a guard or by a rejected session.
func (a *App) RedirectedToLogin() bool {
	if a.surface == "" || navigation.IsAuthSurface(a.surface) {
		return false
	}
	return a.Navigator.CurrentPath() == navigation.LoginPath
}

// enter moves the navigator to the surface of the running command.
func (a *App) enter(path string) {
	a.surface = path
	if a.Navigator.CurrentPath() != path {
		a.Navigator.NavigateTo(path)
	}
}

func (a *App) printer() printer {
	format := a.Output
	if format == "" {
		format = OutputText
	}
	return printer{out: a.Stdout, format: format}
}
