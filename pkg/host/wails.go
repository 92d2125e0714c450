package host

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/wailsapp/wails/v2"
	wailsmenu "github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/mchmarny/jellmachine/pkg/menu"
)

const (
	// DefaultWidth is the initial main window width.
	DefaultWidth = 1280

	// DefaultHeight is the initial main window height.
	DefaultHeight = 800
)

// bridge holds the runtime calls the adapter makes, so they can be
// replaced where no native runtime exists.
type bridge struct {
	execJS func(ctx context.Context, script string)
	quit   func(ctx context.Context)
	about  func(ctx context.Context, title, message string) error
	run    func(opts *options.App) error
}

var wailsBridge = bridge{
	execJS: runtime.WindowExecJS,
	quit:   runtime.Quit,
	about: func(ctx context.Context, title, message string) error {
		_, err := runtime.MessageDialog(ctx, runtime.MessageDialogOptions{
			Type:    runtime.InfoDialog,
			Title:   title,
			Message: message,
		})
		return err
	},
	run: wails.Run,
}

// Wails hosts the application on the Wails v2 runtime.
type Wails struct {
	title   string
	version string
	width   int
	height  int
	assets  fs.FS
	log     *slog.Logger

	menu     *menu.Menu
	handler  MenuEventHandler
	bindings []any

	rt       bridge
	window   *window
	exitCode atomic.Int32
}

// Option is a functional option for configuring the Wails host.
type Option func(*Wails)

// WithTitle sets the window title and the application name shown in About.
func WithTitle(title string) Option {
	return func(w *Wails) { w.title = title }
}

// WithVersion sets the version shown in the About dialog.
func WithVersion(version string) Option {
	return func(w *Wails) { w.version = version }
}

// WithSize sets the initial window size. Non-positive values keep the default.
func WithSize(width, height int) Option {
	return func(w *Wails) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}

// WithAssets sets the filesystem the web view content is served from.
func WithAssets(assets fs.FS) Option {
	return func(w *Wails) { w.assets = assets }
}

// WithLogger sets the logger used by the adapter and the Wails runtime.
func WithLogger(l *slog.Logger) Option {
	return func(w *Wails) { w.log = l }
}

// NewWails creates a Wails host with the provided options.
func NewWails(opts ...Option) *Wails {
	w := &Wails{
		width:  DefaultWidth,
		height: DefaultHeight,
		log:    slog.Default(),
		rt:     wailsBridge,
	}

	for _, opt := range opts {
		opt(w)
	}

	w.window = &window{rt: &w.rt}

	return w
}

var _ Builder = (*Wails)(nil)
var _ ProcessController = (*Wails)(nil)

// Menu sets the application menu.
func (w *Wails) Menu(m *menu.Menu) Builder {
	w.menu = m
	return w
}

// OnMenuEvent sets the handler invoked for custom menu items.
func (w *Wails) OnMenuEvent(h MenuEventHandler) Builder {
	w.handler = h
	return w
}

// Bind exposes the exported methods of v to the web view.
func (w *Wails) Bind(v any) Builder {
	w.bindings = append(w.bindings, v)
	return w
}

// Window returns the main window.
func (w *Wails) Window() Window {
	return w.window
}

// Exit records the exit code and asks the runtime to quit.
func (w *Wails) Exit(code int) {
	w.exitCode.Store(int32(code))

	ctx := w.window.context()
	if ctx == nil {
		w.log.Warn("exit requested before the runtime started", "code", code)
		return
	}

	w.log.Info("exit requested", "code", code)
	w.rt.quit(ctx)
}

// ExitCode returns the code last passed to Exit.
func (w *Wails) ExitCode() int {
	return int(w.exitCode.Load())
}

// Run renders the menu, binds procedures and blocks in the Wails event loop.
func (w *Wails) Run() error {
	appMenu, err := w.buildMenu()
	if err != nil {
		return fmt.Errorf("failed to build menu: %w", err)
	}

	for _, b := range w.bindings {
		w.log.Debug("binding procedures", "type", fmt.Sprintf("%T", b), "names", ProcedureNames(b))
	}

	opts := &options.App{
		Title:  w.title,
		Width:  w.width,
		Height: w.height,
		Menu:   appMenu,
		AssetServer: &assetserver.Options{
			Assets: w.assets,
		},
		OnStartup: func(ctx context.Context) {
			w.window.attach(ctx)
			w.log.Info("window started")
		},
		OnShutdown: func(_ context.Context) {
			w.window.attach(nil)
			w.log.Info("window shut down")
		},
		Bind:     w.bindings,
		Logger:   NewSlogAdapter(w.log),
		LogLevel: wailsLevel(w.log),
	}

	if err := w.rt.run(opts); err != nil {
		return fmt.Errorf("failed to run host: %w", err)
	}

	return nil
}

// buildMenu converts the menu tree into a Wails menu.
func (w *Wails) buildMenu() (*wailsmenu.Menu, error) {
	if w.menu == nil {
		return nil, nil
	}

	if err := w.menu.Validate(); err != nil {
		return nil, err
	}

	root := wailsmenu.NewMenu()
	for _, sub := range w.menu.Submenus {
		target := root.AddSubmenu(sub.Label)
		for _, item := range sub.Items {
			if err := w.addItem(target, item); err != nil {
				return nil, err
			}
		}
	}

	return root, nil
}

func (w *Wails) addItem(target *wailsmenu.Menu, item menu.Item) error {
	switch item.Kind {
	case menu.KindAbout:
		target.AddText(item.Label, nil, func(_ *wailsmenu.CallbackData) {
			w.showAbout(item.Label)
		})
	case menu.KindSeparator:
		target.AddSeparator()
	case menu.KindQuit:
		target.AddText(item.Label, keys.CmdOrCtrl("q"), func(_ *wailsmenu.CallbackData) {
			w.Exit(0)
		})
	case menu.KindCustom:
		acc, err := Accelerator(item.Accelerator)
		if err != nil {
			return fmt.Errorf("item %q: %w", item.ID, err)
		}
		id := item.ID
		target.AddText(item.Label, acc, func(_ *wailsmenu.CallbackData) {
			w.Dispatch(id)
		})
	default:
		return fmt.Errorf("%w: unknown kind %q", menu.ErrInvalidItem, item.Kind)
	}

	return nil
}

// Dispatch delivers a menu event for id against the main window.
// Handler errors are logged; the event loop keeps running.
func (w *Wails) Dispatch(id string) {
	if w.handler == nil {
		return
	}

	if err := w.handler.OnMenuEvent(MenuEvent{ID: id, Window: w.window}); err != nil {
		w.log.Error("menu event failed", "id", id, "error", err)
	}
}

func (w *Wails) showAbout(label string) {
	ctx := w.window.context()
	if ctx == nil {
		return
	}

	msg := w.title
	if w.version != "" {
		msg = fmt.Sprintf("%s %s", w.title, w.version)
	}

	if err := w.rt.about(ctx, label, msg); err != nil {
		w.log.Error("failed to show about dialog", "error", err)
	}
}

// window is the main Wails window. Its context is set between startup
// and shutdown.
type window struct {
	rt  *bridge
	mu  sync.RWMutex
	ctx context.Context
}

func (win *window) attach(ctx context.Context) {
	win.mu.Lock()
	defer win.mu.Unlock()
	win.ctx = ctx
}

func (win *window) context() context.Context {
	win.mu.RLock()
	defer win.mu.RUnlock()
	return win.ctx
}

// Eval runs the script in the window's web view.
func (win *window) Eval(script string) error {
	ctx := win.context()
	if ctx == nil {
		return ErrWindowClosed
	}

	win.rt.execJS(ctx, script)

	return nil
}
