package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GeoBoard/internal/geometry"
	"GeoBoard/internal/state"
)

func newTestWidget(t *testing.T, readOnly bool) *FigureWidget {
	t.Helper()
	test.NewApp()
	w := NewFigureWidget(state.NewFigure(), readOnly)
	w.Resize(fyne.NewSize(900, 600))
	t.Cleanup(w.stopAnimation)
	return w
}

func mouseEvent(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func TestMouseDownPicksPointAndDragMovesIt(t *testing.T) {
	w := newTestWidget(t, false)

	// Point A sits at math (-120, -80): screen (330, 380) on a
	// 900x600 canvas.
	w.MouseDown(mouseEvent(330, 380))
	i, dragging := w.figure.Dragging()
	require.True(t, dragging)
	require.Equal(t, 0, i)

	w.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(450, 300)},
	})
	assert.Equal(t, geometry.Pt(0, 0), w.figure.Points()[0].Pos)

	w.DragEnd()
	_, dragging = w.figure.Dragging()
	assert.False(t, dragging)
}

func TestMouseDownOnEmptySpaceStartsNoDrag(t *testing.T) {
	w := newTestWidget(t, false)

	w.MouseDown(mouseEvent(10, 10))
	_, dragging := w.figure.Dragging()
	assert.False(t, dragging)
}

func TestReadOnlyViewerIgnoresPointer(t *testing.T) {
	w := newTestWidget(t, true)
	before := w.figure.Points()

	w.MouseDown(mouseEvent(330, 380))
	_, dragging := w.figure.Dragging()
	assert.False(t, dragging)

	w.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(450, 300)},
	})
	assert.Equal(t, before, w.figure.Points())
}

// Destroying the renderer must end the animation goroutine, and a
// second stop must not panic.
func TestRendererDestroyStopsAnimation(t *testing.T) {
	w := newTestWidget(t, false)
	r := test.WidgetRenderer(w)

	r.Destroy()
	select {
	case <-w.stop:
	default:
		t.Fatal("stop channel still open after Destroy")
	}
	w.stopAnimation()
}

func TestRendererShowsConstructs(t *testing.T) {
	w := newTestWidget(t, false)
	r := test.WidgetRenderer(w)

	objects := r.Objects()
	assert.Greater(t, len(objects), 10, "expected grid, axes, constructs and markers")
}

func TestModeNameRoundTrip(t *testing.T) {
	for name, mode := range modeNames {
		assert.Equal(t, name, modeName(mode))
	}
}
