package resources

// This file embeds all the resources used by the program.

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed frost.svg
var embedFrostIcon []byte
var FrostIcon = fyne.NewStaticResource("frost.svg", embedFrostIcon)

//go:embed snapshot.svg
var embedSnapshot []byte
var Snapshot = fyne.NewStaticResource("snapshot.svg", embedSnapshot)

// FrostIconPng is the raster version of FrostIcon, for the system tray.
//go:embed frost.png
var embedFrostIconPng []byte
var FrostIconPng = fyne.NewStaticResource("frost.png", embedFrostIconPng)
