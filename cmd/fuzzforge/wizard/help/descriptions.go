package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Range       string // accepted values, empty when free-form
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"diameter": {
		Title:       "DIAMETER",
		Range:       "1 or more",
		Description: "Side of the square sprite, in pixels.",
		Details:     "The disc touches the middle of each edge; corner cells outside the radius are fully transparent.",
	},
	"base_color": {
		Title:       "BASE COLOR",
		Range:       "0x000000-0xFFFFFF or a name",
		Description: "Color shared by every visible pixel.",
		Details: `Hex: 0xFF8800, #FF8800 or FF8800
Names: red, orange, darkslateblue, ...
Only alpha varies across the sprite.`,
	},
	"alpha_start": {
		Title:       "ALPHA START",
		Range:       "0-255",
		Description: "Opacity at the center (0-255).",
		Details:     "255 is fully opaque, 0 fully transparent.",
	},
	"alpha_end": {
		Title:       "ALPHA END",
		Range:       "0-255",
		Description: "Opacity at the rim of the disc (0-255).",
		Details:     "Alpha blends from start to end with the squared distance, so the core stays bright and the edge falls off quickly.",
	},
	"zoom": {
		Title:       "PREVIEW ZOOM",
		Range:       "0 (auto) or more",
		Description: "Magnification of the preview window.",
		Details:     "0 picks a zoom showing the sprite at 256 pixels or more.",
	},
	"action": {
		Title:       "ACTION",
		Description: "What to do with the configured fuzzball.",
		Details: `Preview: print the values and open a preview window
Print: print the values only
Save: write the parameters to a YAML file`,
	},
}
