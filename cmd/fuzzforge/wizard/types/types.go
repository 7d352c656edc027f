// Package types holds the wizard state shared by the wizard and its screens.
package types

// State holds the parameters edited in the wizard.
type State struct {
	Diameter   int
	BaseColor  int // 0xRRGGBB
	AlphaStart int
	AlphaEnd   int
	Zoom       int // 0 = automatic
}
