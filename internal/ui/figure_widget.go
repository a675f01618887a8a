package ui

import (
	"fmt"
	"image/color"
	"math"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"GeoBoard/internal/geometry"
	"GeoBoard/internal/state"
)

// Colors of the dark theme, matching the classic demonstration.
var (
	bgColor        = color.NRGBA{R: 15, G: 15, B: 25, A: 255}
	gridColor      = color.NRGBA{R: 40, G: 40, B: 60, A: 255}
	axisColor      = color.NRGBA{R: 80, G: 80, B: 120, A: 255}
	euclideanColor = color.NRGBA{R: 100, G: 200, B: 255, A: 255}
	affineColor    = color.NRGBA{R: 255, G: 150, B: 100, A: 255}
	shearedColor   = color.NRGBA{R: 255, G: 150, B: 100, A: 140}
	parallelColor  = color.NRGBA{R: 150, G: 255, B: 150, A: 255}
	pointColor     = color.NRGBA{R: 255, G: 255, B: 100, A: 255}
	textColor      = color.NRGBA{R: 200, G: 200, B: 220, A: 255}
	highlightColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	gridStep    = 25.0
	pickRadius  = 14.0
	pointRadius = 6.0
	frameDelay  = 33 * time.Millisecond
)

// FigureWidget is the interactive canvas: it renders the figure's
// points and derived constructs and forwards pointer events to the
// figure's drag operations. In a viewer session it is read-only.
type FigureWidget struct {
	widget.BaseWidget

	figure   *state.Figure
	readOnly bool

	// showGrid, animate, phase and hoverIndex are only touched on the
	// UI thread: pointer handlers run there, and the animation ticker
	// funnels its updates through fyne.Do.
	showGrid   bool
	animate    bool
	phase      float64
	hoverIndex int

	stop     chan struct{}
	stopOnce sync.Once

	statusBar *widget.Label
}

var _ fyne.Widget = (*FigureWidget)(nil)
var _ fyne.Draggable = (*FigureWidget)(nil)
var _ desktop.Mouseable = (*FigureWidget)(nil)
var _ desktop.Hoverable = (*FigureWidget)(nil)

// NewFigureWidget wraps a figure in an interactive canvas.
func NewFigureWidget(figure *state.Figure, readOnly bool) *FigureWidget {
	w := &FigureWidget{
		figure:     figure,
		readOnly:   readOnly,
		showGrid:   true,
		animate:    true,
		hoverIndex: -1,
		stop:       make(chan struct{}),
		statusBar:  widget.NewLabel("Ready"),
	}
	w.ExtendBaseWidget(w)
	go w.animationLoop()
	return w
}

// animationLoop drives the pulsing point markers and the shear
// demonstration while animation is enabled. All state mutation happens
// inside fyne.Do, on the UI thread the renderer reads from. The loop
// ends when the renderer is destroyed.
func (w *FigureWidget) animationLoop() {
	ticker := time.NewTicker(frameDelay)
	defer ticker.Stop()
	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			fyne.Do(func() {
				if !w.animate {
					return
				}
				w.phase += frameDelay.Seconds()
				w.figure.SetShear(0.3 * math.Sin(w.phase*0.5))
				w.Refresh()
			})
		}
	}
}

// stopAnimation ends the animation goroutine. Safe to call twice.
func (w *FigureWidget) stopAnimation() {
	w.stopOnce.Do(func() { close(w.stop) })
}

// SetStatus updates the status bar from any goroutine.
func (w *FigureWidget) SetStatus(text string) {
	fyne.Do(func() {
		w.statusBar.SetText(text)
	})
}

// StatusBar returns the label shown under the canvas.
func (w *FigureWidget) StatusBar() *widget.Label {
	return w.statusBar
}

// SetShowGrid toggles the background grid.
func (w *FigureWidget) SetShowGrid(show bool) {
	w.showGrid = show
	w.Refresh()
}

// SetAnimate toggles the pulse and shear animation.
func (w *FigureWidget) SetAnimate(on bool) {
	w.animate = on
}

// toScreen converts math coordinates (origin center, y up) to widget
// coordinates.
func (w *FigureWidget) toScreen(p geometry.Point) fyne.Position {
	size := w.Size()
	return fyne.NewPos(
		float32(size.Width/2)+float32(p.X),
		float32(size.Height/2)-float32(p.Y),
	)
}

// toMath converts widget coordinates to math coordinates.
func (w *FigureWidget) toMath(pos fyne.Position) geometry.Point {
	size := w.Size()
	return geometry.Pt(
		float64(pos.X)-float64(size.Width)/2,
		float64(size.Height)/2-float64(pos.Y),
	)
}

func (w *FigureWidget) MouseDown(e *desktop.MouseEvent) {
	if w.readOnly || e.Button != desktop.MouseButtonPrimary {
		return
	}
	if i, ok := w.figure.HitTest(w.toMath(e.Position), pickRadius); ok {
		w.figure.StartDrag(i)
		w.Refresh()
	}
}

func (w *FigureWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.figure.EndDrag()
		w.Refresh()
	}
}

func (w *FigureWidget) Dragged(e *fyne.DragEvent) {
	if w.readOnly {
		return
	}
	p := w.toMath(e.Position)
	w.figure.MoveDrag(p.X, p.Y)
	w.Refresh()
}

func (w *FigureWidget) DragEnd() {
	w.figure.EndDrag()
}

func (w *FigureWidget) MouseIn(*desktop.MouseEvent) {}

// MouseMoved highlights the hovered point and shows live coordinates
// in the status bar.
func (w *FigureWidget) MouseMoved(e *desktop.MouseEvent) {
	p := w.toMath(e.Position)
	i, ok := w.figure.HitTest(p, pickRadius)
	if !ok {
		i = -1
	}
	if i != w.hoverIndex {
		w.hoverIndex = i
		w.Refresh()
	}
	if i >= 0 {
		pts := w.figure.Points()
		np := pts[i]
		w.statusBar.SetText(fmt.Sprintf("%s = (%.0f, %.0f)  drag to move", np.Label, np.Pos.X, np.Pos.Y))
	} else {
		w.statusBar.SetText(fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y))
	}
}

func (w *FigureWidget) MouseOut() {
	if w.hoverIndex != -1 {
		w.hoverIndex = -1
		w.Refresh()
	}
}

func (w *FigureWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &figureRenderer{w: w}
	r.background = canvas.NewRectangle(bgColor)
	return r
}

type figureRenderer struct {
	w          *FigureWidget
	background *canvas.Rectangle
}

func (r *figureRenderer) Objects() []fyne.CanvasObject {
	w := r.w
	size := w.Size()
	objects := []fyne.CanvasObject{r.background}

	if w.showGrid {
		objects = append(objects, r.gridLines(size)...)
	}
	objects = append(objects, r.axes(size)...)
	objects = append(objects, r.constructs()...)
	objects = append(objects, r.pointMarkers()...)
	return objects
}

func (r *figureRenderer) gridLines(size fyne.Size) []fyne.CanvasObject {
	var lines []fyne.CanvasObject
	for x := float32(0); x < size.Width; x += gridStep {
		l := canvas.NewLine(gridColor)
		l.StrokeWidth = 1
		l.Position1 = fyne.NewPos(x, 0)
		l.Position2 = fyne.NewPos(x, size.Height)
		lines = append(lines, l)
	}
	for y := float32(0); y < size.Height; y += gridStep {
		l := canvas.NewLine(gridColor)
		l.StrokeWidth = 1
		l.Position1 = fyne.NewPos(0, y)
		l.Position2 = fyne.NewPos(size.Width, y)
		lines = append(lines, l)
	}
	return lines
}

func (r *figureRenderer) axes(size fyne.Size) []fyne.CanvasObject {
	cx, cy := size.Width/2, size.Height/2

	xAxis := canvas.NewLine(axisColor)
	xAxis.StrokeWidth = 2
	xAxis.Position1 = fyne.NewPos(0, cy)
	xAxis.Position2 = fyne.NewPos(size.Width, cy)

	yAxis := canvas.NewLine(axisColor)
	yAxis.StrokeWidth = 2
	yAxis.Position1 = fyne.NewPos(cx, 0)
	yAxis.Position2 = fyne.NewPos(cx, size.Height)

	objects := []fyne.CanvasObject{xAxis, yAxis}

	// Arrowheads as line pairs.
	const arrow = 10
	for _, seg := range [][4]float32{
		{size.Width - 4, cy, size.Width - 4 - arrow, cy - 5},
		{size.Width - 4, cy, size.Width - 4 - arrow, cy + 5},
		{cx, 4, cx - 5, 4 + arrow},
		{cx, 4, cx + 5, 4 + arrow},
	} {
		l := canvas.NewLine(axisColor)
		l.StrokeWidth = 2
		l.Position1 = fyne.NewPos(seg[0], seg[1])
		l.Position2 = fyne.NewPos(seg[2], seg[3])
		objects = append(objects, l)
	}

	xLabel := canvas.NewText("x", textColor)
	xLabel.Move(fyne.NewPos(size.Width-24, cy+8))
	yLabel := canvas.NewText("y", textColor)
	yLabel.Move(fyne.NewPos(cx+8, 12))
	return append(objects, xLabel, yLabel)
}

func (r *figureRenderer) constructs() []fyne.CanvasObject {
	var objects []fyne.CanvasObject
	cs := r.w.figure.Constructs()

	for _, ls := range cs.Segments {
		objects = append(objects, r.segmentLines(ls)...)
	}

	// Readout column, top left.
	y := float32(52)
	for _, ro := range cs.Readouts {
		t := canvas.NewText(ro.Text, textColor)
		t.TextSize = 14
		t.Move(fyne.NewPos(16, y))
		objects = append(objects, t)
		y += 20
	}
	return objects
}

func (r *figureRenderer) segmentLines(ls state.LabeledSegment) []fyne.CanvasObject {
	var col color.NRGBA
	width := float32(2)
	switch ls.Kind {
	case state.SegBase:
		col = euclideanColor
		// Pulsing thickness, matching the point pulse.
		width = float32(3 * (math.Sin(r.w.phase)*0.5 + 1))
	case state.SegPerpendicular:
		col = euclideanColor
	case state.SegParallel:
		col = parallelColor
	case state.SegTriangle:
		col = affineColor
	case state.SegSheared:
		col = shearedColor
	default:
		col = textColor
	}

	l := canvas.NewLine(col)
	l.StrokeWidth = width
	l.Position1 = r.w.toScreen(ls.Seg.A)
	l.Position2 = r.w.toScreen(ls.Seg.B)
	objects := []fyne.CanvasObject{l}

	if ls.Label != "" {
		t := canvas.NewText(ls.Label, col)
		t.TextSize = 12
		t.Move(r.w.toScreen(ls.Seg.Midpoint()).AddXY(6, -6))
		objects = append(objects, t)
	}
	return objects
}

func (r *figureRenderer) pointMarkers() []fyne.CanvasObject {
	var objects []fyne.CanvasObject
	pulse := float32(1 + 0.3*math.Sin(r.w.phase*2))
	dragIdx := -1
	if i, ok := r.w.figure.Dragging(); ok {
		dragIdx = i
	}

	for i, np := range r.w.figure.Points() {
		radius := float32(pointRadius) * pulse
		col := pointColor
		if i == r.w.hoverIndex || i == dragIdx {
			col = highlightColor
			radius += 2
		}

		c := canvas.NewCircle(col)
		pos := r.w.toScreen(np.Pos)
		c.Move(fyne.NewPos(pos.X-radius, pos.Y-radius))
		c.Resize(fyne.NewSize(radius*2, radius*2))

		t := canvas.NewText(np.Label, col)
		t.TextSize = 13
		t.Move(pos.AddXY(radius+3, -radius-3))
		objects = append(objects, c, t)
	}
	return objects
}

func (r *figureRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *figureRenderer) MinSize() fyne.Size {
	return fyne.NewSize(900, 600)
}

func (r *figureRenderer) Refresh() {
	canvas.Refresh(r.w)
}

func (r *figureRenderer) Destroy() {
	r.w.stopAnimation()
}
