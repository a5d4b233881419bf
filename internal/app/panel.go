package app

import (
	"github.com/Faultbox/tessview/internal/engine/ui2d"
	"github.com/Faultbox/tessview/internal/viewer"
)

func color(c viewer.Color) ui2d.Color {
	return ui2d.Opaque(c.R, c.G, c.B)
}

// drawPanel paints the status panel, or the help overlay in its place,
// into the bottom of the window.
func drawPanel(c canvas, v *viewer.Viewer) {
	ww, wh := v.Size()
	top := float32(viewer.StatusTop(wh))
	l := v.Layout()

	rect := func(r viewer.Rect, col viewer.Color) {
		c.DrawRect(float32(r.X), top+float32(r.Y), float32(r.W), float32(r.H), color(col))
	}
	gradient := func(r viewer.Rect, upper, lower viewer.Color) {
		c.DrawGradientRect(float32(r.X), top+float32(r.Y), float32(r.W), float32(r.H), color(upper), color(lower))
	}

	rect(viewer.Rect{W: ww, H: l.Height}, viewer.White)
	// divider between the mesh and the panel
	rect(viewer.Rect{W: ww, H: 1}, viewer.Black)

	labels := v.HelpLabels()
	if !v.HelpVisible() {
		for _, r := range l.Shapes {
			gradient(r, viewer.ButtonDark, viewer.ButtonLight)
		}
		for i := range l.Fields {
			if v.Field(viewer.Field(i)).Active {
				rect(l.Borders[i], viewer.Black)
			}
			rect(l.Fields[i], viewer.Gray)
			gradient(l.Inc[i], viewer.Gray, viewer.DarkGray)
			gradient(l.Dec[i], viewer.Gray, viewer.DarkGray)
		}
		rect(l.Help, viewer.Yellow)
		labels = v.StatusLabels()
	}

	for _, lb := range labels {
		c.DrawText(float32(lb.X), top+float32(lb.Y), lb.Text, 1, color(lb.Color))
	}
}
