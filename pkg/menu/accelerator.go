package menu

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAccelerator is returned when a shortcut string cannot be parsed.
var ErrInvalidAccelerator = errors.New("invalid accelerator")

// Modifier is a keyboard modifier in an accelerator.
type Modifier string

const (
	ModCmdOrCtrl Modifier = "cmdorctrl"
	ModShift     Modifier = "shift"
	ModAlt       Modifier = "optionoralt"
	ModControl   Modifier = "ctrl"
)

var modifierAliases = map[string]Modifier{
	"commandorcontrol": ModCmdOrCtrl,
	"cmdorctrl":        ModCmdOrCtrl,
	"shift":            ModShift,
	"alt":              ModAlt,
	"option":           ModAlt,
	"optionoralt":      ModAlt,
	"control":          ModControl,
	"ctrl":             ModControl,
	"command":          ModCmdOrCtrl,
	"cmd":              ModCmdOrCtrl,
	"super":            ModCmdOrCtrl,
}

// Accelerator is a parsed keyboard shortcut.
type Accelerator struct {
	Modifiers []Modifier
	Key       string
}

// ParseAccelerator parses strings such as "CommandOrControl+R" or
// "Shift+Alt+F5". Modifier names are case-insensitive and the key is
// returned lower-cased.
func ParseAccelerator(s string) (Accelerator, error) {
	parts := strings.Split(strings.TrimSpace(s), "+")
	if len(parts) == 0 || strings.TrimSpace(parts[len(parts)-1]) == "" {
		return Accelerator{}, fmt.Errorf("%w: %q has no key", ErrInvalidAccelerator, s)
	}

	var acc Accelerator
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifierAliases[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return Accelerator{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidAccelerator, p, s)
		}
		acc.Modifiers = append(acc.Modifiers, mod)
	}

	acc.Key = strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))

	return acc, nil
}
