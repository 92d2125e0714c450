package shell

import (
	"sync"

	"github.com/mchmarny/jellmachine/pkg/host"
	"github.com/mchmarny/jellmachine/pkg/menu"
)

type fakeWindow struct {
	mu      sync.Mutex
	scripts []string
	err     error
}

func (w *fakeWindow) Eval(script string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scripts = append(w.scripts, script)
	return w.err
}

func (w *fakeWindow) Scripts() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.scripts...)
}

type fakeProcess struct {
	codes []int
}

func (p *fakeProcess) Exit(code int) {
	p.codes = append(p.codes, code)
}

type fakeCounter struct {
	got [][]string
}

func (c *fakeCounter) Increment(val ...string) {
	c.got = append(c.got, val)
}

// fakeRuntime records what the shell registers and runs onRun in place of
// the host event loop.
type fakeRuntime struct {
	fakeProcess
	window   *fakeWindow
	menu     *menu.Menu
	handler  host.MenuEventHandler
	bindings []any
	onRun    func(rt *fakeRuntime) error
}

func (r *fakeRuntime) Menu(m *menu.Menu) host.Builder {
	r.menu = m
	return r
}

func (r *fakeRuntime) OnMenuEvent(h host.MenuEventHandler) host.Builder {
	r.handler = h
	return r
}

func (r *fakeRuntime) Bind(v any) host.Builder {
	r.bindings = append(r.bindings, v)
	return r
}

func (r *fakeRuntime) Run() error {
	if r.onRun == nil {
		return nil
	}
	return r.onRun(r)
}

func (r *fakeRuntime) Window() host.Window {
	return r.window
}

func (r *fakeRuntime) ExitCode() int {
	if len(r.codes) == 0 {
		return 0
	}
	return r.codes[len(r.codes)-1]
}
