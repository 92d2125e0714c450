package host

import (
	"github.com/wailsapp/wails/v2/pkg/menu/keys"

	"github.com/mchmarny/jellmachine/pkg/menu"
)

// Accelerator translates a shortcut string into a Wails accelerator.
// An empty string yields nil, meaning no shortcut.
func Accelerator(s string) (*keys.Accelerator, error) {
	if s == "" {
		return nil, nil
	}

	acc, err := menu.ParseAccelerator(s)
	if err != nil {
		return nil, err
	}

	out := &keys.Accelerator{Key: acc.Key}
	for _, m := range acc.Modifiers {
		out.Modifiers = append(out.Modifiers, keys.Modifier(m))
	}

	return out, nil
}
