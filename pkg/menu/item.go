package menu

// Kind identifies what an Item renders as in the native menu.
type Kind string

const (
	// KindAbout is the platform About item.
	KindAbout Kind = "about"

	// KindSeparator is a native separator line.
	KindSeparator Kind = "separator"

	// KindQuit is the platform Quit item. The host handles it without dispatch.
	KindQuit Kind = "quit"

	// KindCustom is an application item dispatched by its ID.
	KindCustom Kind = "custom"
)

// Item represents an individual entry in a submenu.
type Item struct {
	// Kind is the item type.
	Kind Kind `json:"kind"`

	// ID is the stable identifier passed to the menu-event handler.
	// Only custom items carry one.
	ID string `json:"id,omitempty"`

	// Label is the text shown for the item.
	Label string `json:"label,omitempty"`

	// Accelerator is the optional keyboard shortcut, e.g. "CommandOrControl+R".
	Accelerator string `json:"accelerator,omitempty"`
}

// About returns the native About item for the named application.
func About(appName string) Item {
	return Item{Kind: KindAbout, Label: "About " + appName}
}

// Separator returns a native separator.
func Separator() Item {
	return Item{Kind: KindSeparator}
}

// Quit returns the native Quit item.
func Quit() Item {
	return Item{Kind: KindQuit, Label: "Quit"}
}

// Custom returns an application item with the given identifier and label.
func Custom(id, label string) Item {
	return Item{Kind: KindCustom, ID: id, Label: label}
}

// WithAccelerator returns a copy of the item bound to the given shortcut.
func (i Item) WithAccelerator(accelerator string) Item {
	i.Accelerator = accelerator
	return i
}

// IsCustom reports whether the item is dispatched by ID.
func (i Item) IsCustom() bool {
	return i.Kind == KindCustom
}
