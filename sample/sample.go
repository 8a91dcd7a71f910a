package sample

import (
	"hash/fnv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// ImageRef is an opaque handle to an item's picture
type ImageRef string

// Item is one row of the animated list
type Item struct {
	Title       string
	Description string
	Image       ImageRef
}

var builtin = []Item{
	{Title: "Mountain Lake", Description: "Still water under the first light, mirrored peaks on every side.", Image: "lake"},
	{Title: "Desert Road", Description: "A straight line of asphalt running into the heat haze.", Image: "desert"},
	{Title: "Northern Lights", Description: "Green ribbons over a frozen fjord, shot at minus twenty.", Image: "aurora"},
	{Title: "Rainforest", Description: "Canopy walk through the clouds on a wet morning.", Image: "forest"},
	{Title: "City at Night", Description: "Long exposure of traffic trails across the old bridge.", Image: "city"},
	{Title: "Lighthouse", Description: "Storm waves breaking against the rocks below the lamp.", Image: "lighthouse"},
	{Title: "Lavender Fields", Description: "Rows of purple running to the horizon in early July.", Image: "lavender"},
	{Title: "Glacier", Description: "Blue ice cracking at the edge of the lagoon.", Image: "glacier"},
	{Title: "Sand Dunes", Description: "Wind-carved ridges at sunset with a single set of footprints.", Image: "dunes"},
	{Title: "Waterfall", Description: "Mist rising off a hundred-metre drop into the gorge.", Image: "waterfall"},
	{Title: "Autumn Park", Description: "Maple leaves covering the benches along the river path.", Image: "autumn"},
	{Title: "Harbour", Description: "Fishing boats coming back in before the tide turns.", Image: "harbour"},
	{Title: "Volcano", Description: "Lava glow under a sky full of ash and stars.", Image: "volcano"},
	{Title: "Tulip Garden", Description: "Every colour of the spring bloom in one frame.", Image: "tulips"},
	{Title: "Snowy Cabin", Description: "Smoke from the chimney and fresh powder on the roof.", Image: "cabin"},
	{Title: "Coral Reef", Description: "Shoals of fish over the shallow reef at noon.", Image: "reef"},
}

// List returns the built-in items in display order. The slice is a copy;
// the package list itself never changes.
func List() []Item {
	out := make([]Item, len(builtin))
	copy(out, builtin)
	return out
}

// palette for avatar backgrounds
var avatarColors = []lipgloss.Color{
	"#E57373", "#F06292", "#BA68C8", "#7986CB",
	"#4FC3F7", "#4DB6AC", "#AED581", "#FFD54F",
	"#FF8A65", "#A1887F", "#90A4AE", "#9575CD",
}

// Glyph is the single character standing in for the picture
func (r ImageRef) Glyph() string {
	s := strings.TrimSpace(string(r))
	if s == "" {
		return "?"
	}
	first, _ := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first))
}

// Color is a stable colour derived from the handle
func (r ImageRef) Color() lipgloss.Color {
	h := fnv.New32a()
	h.Write([]byte(r))
	return avatarColors[h.Sum32()%uint32(len(avatarColors))]
}
