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

// Package navigation models the client's current surface and the forced
// return to the login surface after the server rejects the session.
package navigation

import (
	"log/slog"
	"strings"
	"sync"
)

const (
	LoginPath     = "/login"
	RegisterPath  = "/register"
	DashboardPath = "/dashboard"
)

// Navigator exposes the current location and moves the client elsewhere.
type Navigator interface {
	CurrentPath() string
	NavigateTo(path string)
}

// IsAuthSurface reports whether path is the login or registration surface.
func IsAuthSurface(path string) bool {
	return strings.Contains(path, LoginPath) || strings.Contains(path, RegisterPath)
}

// loginRedirector is implemented by navigators that can check the current
// location and redirect in one step.
type loginRedirector interface {
	RedirectToLogin() bool
}

// RedirectToLogin sends nav to the login surface unless it is already on the
// login or registration surface. It reports whether a redirect happened.
func RedirectToLogin(nav Navigator) bool {
	if nav == nil {
		return false
	}
	if r, ok := nav.(loginRedirector); ok {
		return r.RedirectToLogin()
	}
	if IsAuthSurface(nav.CurrentPath()) {
		return false
	}
	nav.NavigateTo(LoginPath)
	return true
}

// Tracker is an in-process Navigator. It records every location change and
// notifies an optional listener after the change is applied.
type Tracker struct {
	mu         sync.Mutex
	current    string
	history    []string
	onNavigate func(from, to string)
}

var _ Navigator = (*Tracker)(nil)

// TrackerOption customizes a Tracker.
type TrackerOption func(*Tracker)

// OnNavigate registers fn to be called after every location change.
func OnNavigate(fn func(from, to string)) TrackerOption {
	return func(t *Tracker) {
		t.onNavigate = fn
	}
}

// NewTracker creates a Tracker positioned at initial.
func NewTracker(initial string, opts ...TrackerOption) *Tracker {
	t := &Tracker{current: initial}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) CurrentPath() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *Tracker) NavigateTo(path string) {
	t.mu.Lock()
	from := t.move(path)
	t.mu.Unlock()
	t.notify(from, path)
}

// RedirectToLogin moves to the login surface unless the tracker is already on
// an auth surface. Concurrent callers observe a single redirect.
func (t *Tracker) RedirectToLogin() bool {
	t.mu.Lock()
	if IsAuthSurface(t.current) {
		t.mu.Unlock()
		return false
	}
	from := t.move(LoginPath)
	t.mu.Unlock()
	slog.Debug("navigation: redirecting to login", "from", from)
	t.notify(from, LoginPath)
	return true
}

// History returns the locations visited after the initial one.
func (t *Tracker) History() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.history...)
}

// move must be called with t.mu held.
func (t *Tracker) move(path string) string {
	from := t.current
	t.current = path
	t.history = append(t.history, path)
	return from
}

func (t *Tracker) notify(from, to string) {
	if t.onNavigate != nil {
		t.onNavigate(from, to)
	}
}
