// Package command is the sole legal channel through which users and
// extensions mutate the workspace model: every change to tabs, panes, or
// settings flows through a registered Command's Execute method.
package command

import (
	"github.com/vilosource/viloxterm/internal/domain/entity"
	"github.com/vilosource/viloxterm/internal/workspace"
)

// Status is the outcome of executing a command.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusNotApplicable
	StatusCancelled
)

// Result reports how a command's execution went.
type Result struct {
	Status  Status
	Message string
	Data    map[string]any
	Err     error
}

// Ok builds a StatusSuccess result.
func Ok(message string, data map[string]any) Result {
	return Result{Status: StatusSuccess, Message: message, Data: data}
}

// Fail builds a StatusFailure result wrapping err.
func Fail(message string, err error) Result {
	return Result{Status: StatusFailure, Message: message, Err: err}
}

// Context carries everything a command needs to resolve its target and run:
// the workspace model, an optional explicit tab/pane override, arbitrary
// parameters, and a service locator for cross-cutting dependencies (the
// PTY manager, the settings engine, the keyboard registry, ...).
type Context struct {
	Model          *workspace.Model
	ActiveTabID    entity.TabID
	ActivePaneID   entity.PaneID
	Parameters     map[string]any
	ServiceLocator ServiceLocator
}

// ServiceLocator resolves named services a command may need beyond the
// workspace model itself. Concrete wiring lives at the application's
// composition root; commands only depend on this interface.
type ServiceLocator interface {
	Service(name string) (any, bool)
}

// ResolveTabID returns the context's explicit active tab if set, else the
// model's current active tab.
func (c Context) ResolveTabID() entity.TabID {
	if c.ActiveTabID != "" {
		return c.ActiveTabID
	}
	if tab := c.Model.GetActiveTab(); tab != nil {
		return tab.ID
	}
	return ""
}

// ResolvePaneID returns the context's explicit active pane if set, else the
// model's current active pane.
func (c Context) ResolvePaneID() entity.PaneID {
	if c.ActivePaneID != "" {
		return c.ActivePaneID
	}
	if pane := c.Model.GetActivePane(); pane != nil {
		return pane.ID
	}
	return ""
}

// Param looks up a named parameter, returning ok=false if absent.
func (c Context) Param(name string) (any, bool) {
	if c.Parameters == nil {
		return nil, false
	}
	v, ok := c.Parameters[name]
	return v, ok
}

// ParamString looks up a string parameter, returning "" if absent or of the
// wrong type.
func (c Context) ParamString(name string) string {
	v, ok := c.Param(name)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Command is the polymorphic unit of mutation. CanExecute defaults to true
// in BaseCommand; implementations only need to override it when a
// precondition can fail.
type Command interface {
	Name() string
	CanExecute(ctx Context) bool
	Execute(ctx Context) Result
}

// BaseCommand gives CanExecute a default true implementation so concrete
// commands only implement Name and Execute unless they have a real
// precondition.
type BaseCommand struct{}

// CanExecute defaults to true.
func (BaseCommand) CanExecute(Context) bool { return true }
