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
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/wso2/tasklist-client/models"
	"github.com/wso2/tasklist-client/services"
)

// OutputFormat selects how command results are written.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// ParseOutputFormat validates the value of the --output flag.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputText, OutputJSON:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unsupported output format %q, expected text or json", s)
	}
}

type printer struct {
	out    io.Writer
	format OutputFormat
}

func (p printer) json(value any) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func (p printer) message(msg string) error {
	if p.format == OutputJSON {
		return p.json(map[string]string{"message": msg})
	}
	_, err := fmt.Fprintln(p.out, msg)
	return err
}

func (p printer) user(user *models.User) error {
	if p.format == OutputJSON {
		return p.json(user)
	}
	if user == nil {
		_, err := fmt.Fprintln(p.out, "No user details returned")
		return err
	}
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", user.ID)
	fmt.Fprintf(tw, "Email:\t%s\n", user.Email)
	if user.Name != "" {
		fmt.Fprintf(tw, "Name:\t%s\n", user.Name)
	}
	return tw.Flush()
}

func (p printer) session(status services.SessionStatus) error {
	if p.format == OutputJSON {
		return p.json(status)
	}
	if !status.Authenticated {
		_, err := fmt.Fprintln(p.out, "Not logged in")
		return err
	}
	if status.ExpiresAt.IsZero() {
		_, err := fmt.Fprintln(p.out, "Logged in (no expiry)")
		return err
	}
	_, err := fmt.Fprintf(p.out, "Logged in until %s\n", status.ExpiresAt.Local().Format(time.RFC3339))
	return err
}

func (p printer) task(task *models.Task) error {
	if p.format == OutputJSON {
		return p.json(task)
	}
	return p.taskTable([]models.Task{*task})
}

func (p printer) dashboard(dashboard *services.Dashboard) error {
	if p.format == OutputJSON {
		return p.json(dashboard)
	}
	if dashboard.User != nil {
		fmt.Fprintf(p.out, "Tasks for %s\n\n", dashboard.User.Email)
	}
	if len(dashboard.Tasks) == 0 {
		_, err := fmt.Fprintln(p.out, "No tasks yet")
		return err
	}
	return p.taskTable(dashboard.Tasks)
}

func (p printer) taskTable(tasks []models.Task) error {
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tTITLE\tCREATED")
	for _, task := range tasks {
		created := "-"
		if !task.CreatedAt.IsZero() {
			created = task.CreatedAt.Local().Format(time.DateOnly)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", task.ID, task.Status, task.Title, created)
	}
	return tw.Flush()
}
