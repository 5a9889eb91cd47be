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

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/wso2/tasklist-client/commands"
	"github.com/wso2/tasklist-client/config"
	"github.com/wso2/tasklist-client/db"
	dbmigrations "github.com/wso2/tasklist-client/db_migrations"
	"github.com/wso2/tasklist-client/navigation"
	"github.com/wso2/tasklist-client/utils"
	"github.com/wso2/tasklist-client/wiring"
)

func setupLogger(cfg *config.Config) {
	var level slog.Level
	switch cfg.LogLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo // default to INFO
	}

	// stdout carries command output, so logs go to stderr
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	os.Exit(run())
}

func run() int {
	flagSet := pflag.NewFlagSet("tasklist", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)
	outputFlag := flagSet.String("output", string(commands.OutputText), "output format: text or json")
	migrateFlag := flagSet.Bool("migrate", false, "migrate the postgres credential store and exit")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	output, err := commands.ParseOutputFormat(*outputFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	setupLogger(cfg)

	if cfg.AutoMaxProcsEnabled {
		if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			slog.Debug(fmt.Sprintf(format, args...))
		})); err != nil {
			slog.Error("Failed to set maxprocs", "error", err)
			return 1
		}
	}

	if *migrateFlag {
		if err := migrate(cfg); err != nil {
			slog.Error("error occurred while migrating", "error", err)
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracker := navigation.NewTracker(navigation.DashboardPath, navigation.OnNavigate(func(from, to string) {
		slog.Debug("Navigated", "from", from, "to", to)
	}))
	dependencies, cleanup, err := wiring.InitializeAppParams(cfg, tracker)
	if err != nil {
		slog.Error("failed to initialize app dependencies", "error", err)
		return 1
	}
	defer cleanup()

	app := &commands.App{
		Auth:      dependencies.AuthService,
		Tasks:     dependencies.TaskService,
		Navigator: tracker,
		Prompter:  commands.NewTerminalPrompter(os.Stdin, os.Stderr),
		Output:    output,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
	if err := app.Run(ctx, flagSet.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", utils.UserMessage(err))
		if app.RedirectedToLogin() {
			fmt.Fprintln(os.Stderr, "Run 'tasklist login' to sign in.")
		}
		return 1
	}
	return 0
}

func migrate(cfg *config.Config) error {
	if cfg.CredentialStore.Backend != config.BackendPostgres {
		return fmt.Errorf("migrations apply to the %q credential store backend only", config.BackendPostgres)
	}
	gormDB, err := db.Open(cfg.POSTGRESQL)
	if err != nil {
		return err
	}
	defer db.Close(gormDB)
	return dbmigrations.Migrate(gormDB)
}
