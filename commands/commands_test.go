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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/tasklist-client/clients/clientmocks"
	"github.com/wso2/tasklist-client/clients/requests"
	"github.com/wso2/tasklist-client/clients/taskssvc"
	"github.com/wso2/tasklist-client/credentials"
	"github.com/wso2/tasklist-client/models"
	"github.com/wso2/tasklist-client/navigation"
	"github.com/wso2/tasklist-client/services"
	"github.com/wso2/tasklist-client/storage"
	"github.com/wso2/tasklist-client/utils"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type scriptedPrompter struct {
	lines   []string
	secrets []string
	prompts []string
}

func (p *scriptedPrompter) ReadLine(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.lines) == 0 {
		return "", errors.New("no input")
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func (p *scriptedPrompter) ReadSecret(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.secrets) == 0 {
		return "", errors.New("no input")
	}
	secret := p.secrets[0]
	p.secrets = p.secrets[1:]
	return secret, nil
}

type appFixture struct {
	client   *clientmocks.TasksSvcClientMock
	store    *credentials.Store
	tracker  *navigation.Tracker
	prompter *scriptedPrompter
	stdout   *bytes.Buffer
	app      *App
}

func newAppFixture(format OutputFormat) *appFixture {
	client := &clientmocks.TasksSvcClientMock{}
	store := credentials.NewStore(storage.NewMemoryStore())
	tracker := navigation.NewTracker(navigation.DashboardPath)
	prompter := &scriptedPrompter{}
	stdout := &bytes.Buffer{}
	return &appFixture{
		client:   client,
		store:    store,
		tracker:  tracker,
		prompter: prompter,
		stdout:   stdout,
		app: &App{
			Auth:      services.NewAuthService(discardLogger, client, store, tracker),
			Tasks:     services.NewTaskService(discardLogger, client),
			Navigator: tracker,
			Prompter:  prompter,
			Output:    format,
			Stdout:    stdout,
			Stderr:    io.Discard,
		},
	}
}

func (f *appFixture) signIn(t *testing.T) {
	t.Helper()
	f.store.Save(t.Context(), validToken(t))
}

func validToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func writePasswordFile(t *testing.T, password string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "password")
	require.NoError(t, os.WriteFile(path, []byte(password+"\n"), 0o600))
	return path
}

func TestLoginCommand(t *testing.T) {
	t.Run("Reads the password file and stores the token", func(t *testing.T) {
		f := newAppFixture(OutputText)
		token := validToken(t)
		f.client.LoginFunc = func(ctx context.Context, creds taskssvc.Credentials) (*taskssvc.LoginResult, error) {
			assert.Equal(t, "ada@example.com", creds.Email)
			assert.Equal(t, "hunter22", creds.Password)
			return &taskssvc.LoginResult{Token: token, User: &models.User{Email: creds.Email}}, nil
		}

		err := f.app.Run(t.Context(), []string{"login", "--email", "ada@example.com", "--password-file", writePasswordFile(t, "hunter22")})
		require.NoError(t, err)

		stored, ok := f.store.Read(t.Context())
		require.True(t, ok)
		assert.Equal(t, token, stored)
		assert.Equal(t, "Logged in as ada@example.com\n", f.stdout.String())
		assert.Equal(t, navigation.DashboardPath, f.tracker.CurrentPath())
	})

	t.Run("Prompts for missing email and password", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.prompter.lines = []string{"ada@example.com"}
		f.prompter.secrets = []string{"hunter22"}
		f.client.LoginFunc = func(ctx context.Context, creds taskssvc.Credentials) (*taskssvc.LoginResult, error) {
			assert.Equal(t, "hunter22", creds.Password)
			return &taskssvc.LoginResult{Token: validToken(t)}, nil
		}

		require.NoError(t, f.app.Run(t.Context(), []string{"login"}))
		assert.Equal(t, []string{"Email: ", "Password: "}, f.prompter.prompts)
		assert.Equal(t, "Logged in\n", f.stdout.String())
	})

	t.Run("Refuses while a session is active", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.signIn(t)

		err := f.app.Run(t.Context(), []string{"login", "--email", "ada@example.com"})
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrAlreadyLoggedIn)
		assert.Equal(t, "Already logged in", utils.UserMessage(err))
		assert.Empty(t, f.client.LoginCalls())
		assert.Empty(t, f.prompter.prompts)
	})

	t.Run("Force signs in again", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.signIn(t)
		f.prompter.secrets = []string{"hunter22"}
		f.client.LoginFunc = func(ctx context.Context, creds taskssvc.Credentials) (*taskssvc.LoginResult, error) {
			return &taskssvc.LoginResult{Token: validToken(t)}, nil
		}

		require.NoError(t, f.app.Run(t.Context(), []string{"login", "--force", "--email", "ada@example.com", "--password-file", "-"}))
		assert.Len(t, f.client.LoginCalls(), 1)
	})

	t.Run("Surfaces the service message", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.client.LoginFunc = func(ctx context.Context, creds taskssvc.Credentials) (*taskssvc.LoginResult, error) {
			return nil, utils.ErrNoTokenReceived
		}

		err := f.app.Run(t.Context(), []string{"login", "--email", "ada@example.com", "--password-file", writePasswordFile(t, "hunter22")})
		require.Error(t, err)
		assert.Equal(t, "No token received", utils.UserMessage(err))
		_, ok := f.store.Read(t.Context())
		assert.False(t, ok)
	})
}

func TestCommandSurfaces(t *testing.T) {
	t.Run("Rejected login stays on the login surface", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.client.LoginFunc = func(ctx context.Context, creds taskssvc.Credentials) (*taskssvc.LoginResult, error) {
			return nil, &requests.HttpError{StatusCode: 401, Body: `{"message":"Invalid credentials"}`}
		}

		err := f.app.Run(t.Context(), []string{"login", "--email", "ada@example.com", "--password-file", writePasswordFile(t, "wrong-password")})
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", utils.UserMessage(err))
		assert.Equal(t, []string{navigation.LoginPath}, f.tracker.History())
		assert.False(t, f.app.RedirectedToLogin())
	})

	t.Run("Register enters the register surface", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.prompter.secrets = []string{"hunter22", "hunter2"}

		require.Error(t, f.app.Run(t.Context(), []string{"register", "--email", "ada@example.com"}))
		assert.Equal(t, navigation.RegisterPath, f.tracker.CurrentPath())
		assert.False(t, f.app.RedirectedToLogin())
	})

	t.Run("Protected command without a session is sent to login", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.tracker.NavigateTo(navigation.LoginPath)

		require.Error(t, f.app.Run(t.Context(), []string{"tasks", "list"}))
		assert.Equal(t, []string{navigation.LoginPath, navigation.DashboardPath, navigation.LoginPath}, f.tracker.History())
		assert.True(t, f.app.RedirectedToLogin())
	})

	t.Run("Session command keeps the location", func(t *testing.T) {
		f := newAppFixture(OutputText)

		require.NoError(t, f.app.Run(t.Context(), []string{"session"}))
		assert.Empty(t, f.tracker.History())
		assert.False(t, f.app.RedirectedToLogin())
	})
}

func TestRegisterCommand(t *testing.T) {
	t.Run("Asks for confirmation when prompting", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.prompter.secrets = []string{"hunter22", "hunter22"}
		f.client.RegisterFunc = func(ctx context.Context, creds taskssvc.Credentials) (*models.User, error) {
			return &models.User{Email: creds.Email}, nil
		}

		require.NoError(t, f.app.Run(t.Context(), []string{"register", "--email", "ada@example.com"}))
		assert.Equal(t, []string{"Password: ", "Confirm password: "}, f.prompter.prompts)
		assert.Equal(t, "Registration successful. Please login.\n", f.stdout.String())
		_, ok := f.store.Read(t.Context())
		assert.False(t, ok, "registration must not sign in")
		assert.Equal(t, navigation.LoginPath, f.tracker.CurrentPath())
	})

	t.Run("Rejects mismatched confirmation", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.prompter.secrets = []string{"hunter22", "hunter23"}

		err := f.app.Run(t.Context(), []string{"register", "--email", "ada@example.com"})
		require.Error(t, err)
		assert.Equal(t, "Passwords do not match", utils.UserMessage(err))
		assert.Empty(t, f.client.RegisterCalls())
	})

	t.Run("Uses the password file as its own confirmation", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.client.RegisterFunc = func(ctx context.Context, creds taskssvc.Credentials) (*models.User, error) {
			assert.Equal(t, "hunter22", creds.Password)
			return nil, nil
		}

		require.NoError(t, f.app.Run(t.Context(), []string{"register", "--email", "ada@example.com", "--password-file", writePasswordFile(t, "hunter22")}))
		assert.Empty(t, f.prompter.prompts)
	})
}

func TestLogoutAndSessionCommands(t *testing.T) {
	f := newAppFixture(OutputJSON)
	f.signIn(t)

	require.NoError(t, f.app.Run(t.Context(), []string{"session"}))
	var status map[string]any
	require.NoError(t, json.Unmarshal(f.stdout.Bytes(), &status))
	assert.Equal(t, true, status["authenticated"])
	assert.Contains(t, status, "expiresAt")

	f.stdout.Reset()
	require.NoError(t, f.app.Run(t.Context(), []string{"logout"}))
	_, ok := f.store.Read(t.Context())
	assert.False(t, ok)

	f.stdout.Reset()
	require.NoError(t, f.app.Run(t.Context(), []string{"session"}))
	assert.JSONEq(t, `{"authenticated": false}`, f.stdout.String())
}

func TestWhoamiCommand(t *testing.T) {
	t.Run("Prints the user", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.signIn(t)
		f.client.GetMeFunc = func(ctx context.Context) (*models.User, error) {
			return &models.User{ID: "7", Email: "ada@example.com"}, nil
		}

		require.NoError(t, f.app.Run(t.Context(), []string{"whoami"}))
		assert.Contains(t, f.stdout.String(), "ada@example.com")
		assert.Contains(t, f.stdout.String(), "7")
	})

	t.Run("Requires a session", func(t *testing.T) {
		f := newAppFixture(OutputText)

		err := f.app.Run(t.Context(), []string{"whoami"})
		assert.ErrorIs(t, err, utils.ErrNotAuthenticated)
		assert.Empty(t, f.client.GetMeCalls())
		assert.Equal(t, navigation.LoginPath, f.tracker.CurrentPath())
	})
}

func TestTasksCommands(t *testing.T) {
	t.Run("List requires a session", func(t *testing.T) {
		f := newAppFixture(OutputText)

		err := f.app.Run(t.Context(), []string{"tasks", "list"})
		assert.ErrorIs(t, err, utils.ErrNotAuthenticated)
		assert.Equal(t, "Please login first", utils.UserMessage(err))
		assert.Empty(t, f.client.ListTasksCalls())
	})

	t.Run("List prints the dashboard", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.signIn(t)
		f.client.GetMeFunc = func(ctx context.Context) (*models.User, error) {
			return &models.User{Email: "ada@example.com"}, nil
		}
		f.client.ListTasksFunc = func(ctx context.Context) ([]models.Task, error) {
			return []models.Task{{ID: "1", Title: "Write report", Status: models.TaskStatusInProgress}}, nil
		}

		require.NoError(t, f.app.Run(t.Context(), []string{"tasks", "list"}))
		out := f.stdout.String()
		assert.Contains(t, out, "Tasks for ada@example.com")
		assert.Contains(t, out, "Write report")
		assert.Contains(t, out, "in-progress")
	})

	t.Run("List emits JSON", func(t *testing.T) {
		f := newAppFixture(OutputJSON)
		f.signIn(t)
		f.client.GetMeFunc = func(ctx context.Context) (*models.User, error) {
			return &models.User{Email: "ada@example.com"}, nil
		}
		f.client.ListTasksFunc = func(ctx context.Context) ([]models.Task, error) {
			return []models.Task{{ID: "1", Title: "Write report", Status: models.TaskStatusTodo}}, nil
		}

		require.NoError(t, f.app.Run(t.Context(), []string{"tasks", "list"}))
		var dashboard services.Dashboard
		require.NoError(t, json.Unmarshal(f.stdout.Bytes(), &dashboard))
		require.Len(t, dashboard.Tasks, 1)
		assert.Equal(t, "Write report", dashboard.Tasks[0].Title)
		assert.Equal(t, "ada@example.com", dashboard.User.Email)
	})

	t.Run("Create joins the title words", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.signIn(t)
		f.client.CreateTaskFunc = func(ctx context.Context, req taskssvc.CreateTaskRequest) (*models.Task, error) {
			return &models.Task{ID: "2", Title: req.Title, Status: req.Status}, nil
		}

		require.NoError(t, f.app.Run(t.Context(), []string{"tasks", "create", "Buy", "milk"}))
		calls := f.client.CreateTaskCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "Buy milk", calls[0].Req.Title)
		assert.Equal(t, models.TaskStatusTodo, calls[0].Req.Status)
		assert.Contains(t, f.stdout.String(), "Buy milk")
	})

	t.Run("Status rejects unknown values before calling the service", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.signIn(t)

		err := f.app.Run(t.Context(), []string{"tasks", "status", "2", "blocked"})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.Empty(t, f.client.UpdateTaskStatusCalls())
	})

	t.Run("Status needs an id and a status", func(t *testing.T) {
		f := newAppFixture(OutputText)
		f.signIn(t)

		assert.Error(t, f.app.Run(t.Context(), []string{"tasks", "status", "2"}))
	})

	t.Run("Get prints the task", func(t *testing.T) {
		f := newAppFixture(OutputJSON)
		f.signIn(t)
		f.client.GetTaskFunc = func(ctx context.Context, taskID string) (*models.Task, error) {
			return &models.Task{ID: models.ID(taskID), Title: "Write report", Status: models.TaskStatusDone}, nil
		}

		require.NoError(t, f.app.Run(t.Context(), []string{"tasks", "get", "9"}))
		var task models.Task
		require.NoError(t, json.Unmarshal(f.stdout.Bytes(), &task))
		assert.Equal(t, models.ID("9"), task.ID)
		assert.Equal(t, models.TaskStatusDone, task.Status)
	})
}

func TestCommandDispatch(t *testing.T) {
	f := newAppFixture(OutputText)

	err := f.app.Run(t.Context(), []string{"teleport"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "teleport"`)

	err = f.app.Run(t.Context(), []string{"tasks"})
	assert.EqualError(t, err, "subcommand required")

	err = f.app.Run(t.Context(), []string{"login", "--bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag: --bogus")

	assert.NoError(t, f.app.Run(t.Context(), []string{"--help"}))
}

func TestParseOutputFormat(t *testing.T) {
	format, err := ParseOutputFormat("json")
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, format)

	_, err = ParseOutputFormat("yaml")
	assert.Error(t, err)
}
