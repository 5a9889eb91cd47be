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

	"github.com/spf13/pflag"

	"github.com/wso2/tasklist-client/navigation"
)

type credentialFlags struct {
	email        string
	passwordFile string
}

func (f *credentialFlags) bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.email, "email", "", "account email (prompted when omitted)")
	flagSet.StringVar(&f.passwordFile, "password-file", "", "path to a file containing the password, or - to prompt")
}

func (a *App) loginCommand() *Command {
	var (
		creds credentialFlags
		force bool
	)
	return &Command{
		Name:    "login",
		Summary: "Sign in and store the session token",
		Usage:   "tasklist login [--email EMAIL] [--password-file PATH] [--force]",
		Flags: func() *pflag.FlagSet {
			creds, force = credentialFlags{}, false
			flagSet := pflag.NewFlagSet("login", pflag.ContinueOnError)
			creds.bind(flagSet)
			flagSet.BoolVar(&force, "force", false, "sign in again even when a session is active")
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			a.enter(navigation.LoginPath)
			if !force {
				if err := a.Auth.RequireGuest(ctx); err != nil {
					return err
				}
			}
			email, err := readEmail(a.Prompter, creds.email)
			if err != nil {
				return err
			}
			password, err := readPassword(a.Prompter, creds.passwordFile, "Password: ")
			if err != nil {
				return err
			}

			user, err := a.Auth.Login(ctx, email, password)
			if err != nil {
				return err
			}
			if user != nil && user.Email != "" {
				return a.printer().message("Logged in as " + user.Email)
			}
			return a.printer().message("Logged in")
		},
	}
}

func (a *App) registerCommand() *Command {
	var creds credentialFlags
	return &Command{
		Name:    "register",
		Summary: "Create an account",
		Usage:   "tasklist register [--email EMAIL] [--password-file PATH]",
		Flags: func() *pflag.FlagSet {
			creds = credentialFlags{}
			flagSet := pflag.NewFlagSet("register", pflag.ContinueOnError)
			creds.bind(flagSet)
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			a.enter(navigation.RegisterPath)
			if err := a.Auth.RequireGuest(ctx); err != nil {
				return err
			}
			email, err := readEmail(a.Prompter, creds.email)
			if err != nil {
				return err
			}
			password, err := readPassword(a.Prompter, creds.passwordFile, "Password: ")
			if err != nil {
				return err
			}
			confirm := password
			if creds.passwordFile == "" || creds.passwordFile == "-" {
				if confirm, err = a.Prompter.ReadSecret("Confirm password: "); err != nil {
					return err
				}
			}

			if _, err := a.Auth.Register(ctx, email, password, confirm); err != nil {
				return err
			}
			return a.printer().message("Registration successful. Please login.")
		},
	}
}

func (a *App) logoutCommand() *Command {
	return &Command{
		Name:    "logout",
		Summary: "Remove the stored session token",
		Run: func(ctx context.Context, args []string) error {
			a.Auth.Logout(ctx)
			return a.printer().message("Logged out")
		},
	}
}

func (a *App) whoamiCommand() *Command {
	return &Command{
		Name:    "whoami",
		Summary: "Show the signed in user",
		Run: func(ctx context.Context, args []string) error {
			a.enter(navigation.DashboardPath)
			user, err := a.Auth.CurrentUser(ctx)
			if err != nil {
				return err
			}
			return a.printer().user(user)
		},
	}
}

func (a *App) sessionCommand() *Command {
	return &Command{
		Name:    "session",
		Summary: "Show whether a valid session token is stored",
		Run: func(ctx context.Context, args []string) error {
			return a.printer().session(a.Auth.Session(ctx))
		},
	}
}
