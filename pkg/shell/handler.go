package shell

import (
	"fmt"
	"log/slog"

	"github.com/mchmarny/jellmachine/pkg/host"
	"github.com/mchmarny/jellmachine/pkg/metric"
)

// Handler dispatches menu events by item identifier.
type Handler struct {
	process host.ProcessController
	events  metric.IncrementalCounter
}

// NewHandler returns a menu-event handler that exits through process.
// A nil counter disables event counting.
func NewHandler(process host.ProcessController, events metric.IncrementalCounter) *Handler {
	if events == nil {
		events = metric.Nop{}
	}
	return &Handler{process: process, events: events}
}

var _ host.MenuEventHandler = (*Handler)(nil)

// OnMenuEvent reacts to a single menu selection. Unknown identifiers are ignored.
func (h *Handler) OnMenuEvent(ev host.MenuEvent) error {
	switch ev.ID {
	case QuitID:
		h.events.Increment(QuitID)
		h.process.Exit(0)
	case ReloadID:
		h.events.Increment(ReloadID)
		if ev.Window == nil {
			return fmt.Errorf("reload: %w", host.ErrWindowClosed)
		}
		if err := ev.Window.Eval(ReloadScript); err != nil {
			return fmt.Errorf("reload: %w", err)
		}
	default:
		h.events.Increment("unknown")
		slog.Debug("ignoring menu event", "id", ev.ID)
	}

	return nil
}
