package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

var (
	// ErrDuplicateID is returned when two custom items share an identifier.
	ErrDuplicateID = errors.New("duplicate menu item id")

	// ErrInvalidItem is returned for custom items missing an id or label.
	ErrInvalidItem = errors.New("invalid menu item")
)

// Menu represents the native application menu bar.
type Menu struct {
	// Title is the application name the menu belongs to.
	Title string `json:"title"`

	// Version of the application
	Version string `json:"version,omitempty"`

	// Submenus in display order
	Submenus []Submenu `json:"submenus"`
}

// Submenu is a top-level entry of the menu bar.
type Submenu struct {
	// Label is the submenu title. Empty for the application-name menu.
	Label string `json:"label"`

	// Items in display order
	Items []Item `json:"items"`
}

// CustomItems returns every custom item in the tree in display order.
func (m *Menu) CustomItems() []Item {
	var out []Item
	for _, sub := range m.Submenus {
		for _, item := range sub.Items {
			if item.IsCustom() {
				out = append(out, item)
			}
		}
	}
	return out
}

// Find returns the custom item with the given id.
func (m *Menu) Find(id string) (Item, bool) {
	for _, item := range m.CustomItems() {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Validate checks that custom items are labeled, carry unique ids, and
// have parseable accelerators.
func (m *Menu) Validate() error {
	seen := make(map[string]struct{})

	for _, item := range m.CustomItems() {
		if item.ID == "" || item.Label == "" {
			return fmt.Errorf("%w: custom item %q requires id and label", ErrInvalidItem, item.Label)
		}

		if _, ok := seen[item.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateID, item.ID)
		}
		seen[item.ID] = struct{}{}

		if item.Accelerator != "" {
			if _, err := ParseAccelerator(item.Accelerator); err != nil {
				return fmt.Errorf("item %q: %w", item.ID, err)
			}
		}
	}

	return nil
}

// Handler returns an HTTP handler that responds with the menu structure as JSON.
func (m *Menu) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("handling menu request",
			"method", r.Method,
			"url", r.URL.Path,
		)

		b, err := json.Marshal(m)
		if err != nil {
			slog.Error("failed to encode menu", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	})
}
