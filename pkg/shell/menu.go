package shell

import "github.com/mchmarny/jellmachine/pkg/menu"

const (
	// AppName is the application name shown in the menu and window title.
	AppName = "Jell Machine"

	// ReloadID identifies the Reload menu item.
	ReloadID = "reload"

	// QuitID identifies a custom Quit item. The default menu uses the
	// native Quit item instead, so nothing dispatches it today.
	QuitID = "quit"

	// ReloadScript is evaluated in the window to reload the UI in place.
	ReloadScript = "location.reload();"
)

// NewMenu builds the application menu: a single unnamed submenu holding
// About, Reload, a separator and Quit.
func NewMenu(appName, version string) *menu.Menu {
	return &menu.Menu{
		Title:   appName,
		Version: version,
		Submenus: []menu.Submenu{
			{
				Label: "",
				Items: []menu.Item{
					menu.About(appName),
					menu.Custom(ReloadID, "Reload").WithAccelerator("CommandOrControl+R"),
					menu.Separator(),
					menu.Quit(),
				},
			},
		},
	}
}
