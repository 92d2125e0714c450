// Package host defines the capabilities the shell needs from the GUI host
// runtime and provides the Wails implementation of them.
package host

import (
	"errors"
	"reflect"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/mchmarny/jellmachine/pkg/menu"
)

// ErrWindowClosed is returned when a script is evaluated against a window
// that has not started yet or has already been destroyed.
var ErrWindowClosed = errors.New("window is not available")

// Window is a host window with hosted web content.
type Window interface {
	// Eval evaluates the script against the window's content.
	Eval(script string) error
}

// ProcessController terminates the application.
type ProcessController interface {
	// Exit asks the host to end the process with the given status code.
	Exit(code int)
}

// MenuEvent is delivered once per user menu selection.
type MenuEvent struct {
	// ID is the identifier of the selected item.
	ID string

	// Window is the window the selection originated from.
	Window Window
}

// MenuEventHandler reacts to menu selections.
type MenuEventHandler interface {
	OnMenuEvent(ev MenuEvent) error
}

// MenuEventHandlerFunc adapts a function to MenuEventHandler.
type MenuEventHandlerFunc func(ev MenuEvent) error

// OnMenuEvent calls f(ev).
func (f MenuEventHandlerFunc) OnMenuEvent(ev MenuEvent) error {
	return f(ev)
}

// Builder configures and runs a host application.
type Builder interface {
	Menu(m *menu.Menu) Builder
	OnMenuEvent(h MenuEventHandler) Builder
	// Bind exposes the exported methods of v to the UI layer.
	Bind(v any) Builder

	// Run blocks until the application quits.
	Run() error
}

// ProcedureNames lists the procedures a bound value exposes to the UI
// layer: its exported methods, with the first rune lower-cased, sorted.
func ProcedureNames(v any) []string {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}

	names := make([]string, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		names = append(names, lowerFirst(t.Method(i).Name))
	}
	sort.Strings(names)

	return names
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}
