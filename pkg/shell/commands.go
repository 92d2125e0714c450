package shell

import (
	"log/slog"

	"github.com/mchmarny/jellmachine/pkg/host"
	"github.com/mchmarny/jellmachine/pkg/metric"
)

// Commands is bound to the web view. Every exported method becomes a
// procedure the UI can call, so it exports only Quit.
type Commands struct {
	process     host.ProcessController
	invocations metric.IncrementalCounter
}

// NewCommands returns the bound procedure set. A nil counter disables counting.
func NewCommands(process host.ProcessController, invocations metric.IncrementalCounter) *Commands {
	if invocations == nil {
		invocations = metric.Nop{}
	}
	return &Commands{process: process, invocations: invocations}
}

// Quit terminates the application with exit code 0.
func (c *Commands) Quit() {
	c.invocations.Increment("quit")
	slog.Info("quit requested from ui")
	c.process.Exit(0)
}
