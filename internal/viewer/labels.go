package viewer

import "github.com/Faultbox/tessview/internal/tessellate"

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Panel palette.
var (
	Black       = Color{0, 0, 0}
	White       = Color{1, 1, 1}
	Yellow      = Color{1, 1, 0}
	Gray        = Color{0.7, 0.7, 0.7}
	DarkGray    = Color{0.6, 0.6, 0.6}
	ButtonLight = Color{0.58, 0.87, 0.96}
	ButtonDark  = Color{0.22, 0.24, 0.64}
)

// LineHeight is the pixel height of one line of label text.
const LineHeight = 13

// Label is a text draw request. X and Y place the top-left corner of the
// text in status panel coordinates.
type Label struct {
	Text  string
	X, Y  int
	Color Color
}

var shapeLabels = [tessellate.NumKinds]string{"Cube", "Cylinder", "Cone", "Sphere"}

// HelpLines is the help overlay text: a key column and its description.
var HelpLines = [][2]string{
	{"HELP: (shortcut keys)", ""},
	{"Q / q / Esc", "- Closes Program"},
	{"+ / -", "- Increases/Decreases Primary Tessellation"},
	{"[ / ]", "- Increases/Decreases Secondary Tessellation (Cyl/Cone only)"},
	{"1-4", "- Change Rendering (Cube, Cylinder, etc.)"},
	{"Z / z", "- Toggle The Help Menu"},
	{"Text Box Interaction", "- Click on box, type number, press enter."},
	{"Arrows or Mouse drag", "- Rotates currently selected rendering"},
	{"", ""},
	{"Press 'z' to exit this menu....", ""},
}

const (
	helpKeyX   = 5
	helpDescX  = 150
	helpLineDY = 15
)

// baseline converts a bottom-up baseline in a panel of height ph to the
// top of a text line.
func baseline(ph, y int) int {
	return ph - y - LineHeight
}

// StatusLabels returns the text of the status panel.
func (v *Viewer) StatusLabels() []Label {
	l := v.Layout()
	active := v.current()

	labels := make([]Label, 0, tessellate.NumKinds+9)
	for i, name := range shapeLabels {
		c := Black
		if tessellate.Kind(i) == active {
			c = White
		}
		r := l.Shapes[i]
		x := r.X + (r.W-len(name)*glyphWidth)/2
		labels = append(labels, Label{Text: name, X: x, Y: 38 - LineHeight, Color: c})
	}

	names := [NumFields]string{"Primary Tessellation:", "Secondary Tessellation:"}
	for i, f := range v.fields {
		labels = append(labels,
			Label{Text: names[i], X: 10, Y: baseline(l.Height, f.Y), Color: Black},
			Label{Text: v.FieldText(Field(i)), X: f.X, Y: baseline(l.Height, f.Y), Color: Black},
			Label{Text: "+", X: f.X + 63, Y: baseline(l.Height, f.Y+3), Color: White},
			Label{Text: "-", X: f.X + 108, Y: baseline(l.Height, f.Y+3), Color: White},
		)
	}

	labels = append(labels, Label{Text: "?", X: v.width - 64, Y: baseline(l.Height, 35), Color: Black})
	return labels
}

// HelpLabels returns the text of the help overlay, which covers the
// status panel while help is visible.
func (v *Viewer) HelpLabels() []Label {
	labels := make([]Label, 0, 2*len(HelpLines))
	for i, line := range HelpLines {
		y := helpLineDY*(i+1) - LineHeight
		if line[0] != "" {
			labels = append(labels, Label{Text: line[0], X: helpKeyX, Y: y, Color: Black})
		}
		if line[1] != "" {
			labels = append(labels, Label{Text: line[1], X: helpDescX, Y: y, Color: Black})
		}
	}
	return labels
}

// glyphWidth is the advance of the fixed-width label font.
const glyphWidth = 7
