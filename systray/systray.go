// Package systray runs the program as a system tray app, with a menu
// entry that frosts the screen.
package systray

import (
	glst "github.com/getlantern/systray"
	"github.com/golang/glog"
	"github.com/janpfeifer/frost/resources"
)

// Run runs the system tray app until "Quit" is selected. onFrost is called
// each time the "Frost screen" menu item is clicked, one call at a time.
func Run(onFrost func()) {
	if onFrost == nil {
		glog.Fatal("systray.Run requires an onFrost handler.")
	}
	glst.Run(func() { onReady(onFrost) }, onExit)
}

func onReady(onFrost func()) {
	glst.SetIcon(resources.FrostIconPng.Content())
	glst.SetTitle("Frost (SysTray)")
	glst.SetTooltip("Frost the screen into the clipboard")

	mFrost := glst.AddMenuItem("Frost screen", "Blur the screen and copy it to the clipboard")
	go handler(mFrost, onFrost)
	mQuit := glst.AddMenuItem("Quit", "Quit the whole app")
	go func() { <-mQuit.ClickedCh; glst.Quit() }()
}

func onExit() {
	glog.Infof("Exiting Frost system tray app.")
}

func handler(item *glst.MenuItem, onClick func()) {
	for {
		_, ok := <-item.ClickedCh
		if !ok { // Channel closed, return
			return
		}
		onClick()
	}
}
