package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"GeoBoard/internal/geometry"
	"GeoBoard/internal/state"
)

// A4 portrait, math origin centered on the figure area, 0.3 mm per
// math unit. PDF y grows downward, math y grows upward.
const (
	pageCenterX = 105.0
	pageCenterY = 130.0
	mmPerUnit   = 0.3
)

func toPage(p geometry.Point) (float64, float64) {
	return pageCenterX + p.X*mmPerUnit, pageCenterY - p.Y*mmPerUnit
}

func segmentColor(kind state.SegmentKind) (r, g, b int) {
	switch kind {
	case state.SegBase:
		return 60, 130, 220
	case state.SegPerpendicular:
		return 60, 130, 220
	case state.SegParallel:
		return 90, 180, 90
	case state.SegTriangle:
		return 230, 130, 70
	case state.SegSheared:
		return 230, 170, 120
	default:
		return 0, 0, 0
	}
}

// ExportPDF renders the figure's points, derived constructs and
// readouts to a one-page A4 PDF at path.
func ExportPDF(path string, figure *state.Figure) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "GeoBoard: Euclidean & Affine Planes", "", 1, "C", false, 0, "")

	cs := figure.Constructs()

	for _, ls := range cs.Segments {
		r, g, b := segmentColor(ls.Kind)
		pdf.SetDrawColor(r, g, b)
		if ls.Kind == state.SegSheared {
			pdf.SetLineWidth(0.2)
		} else {
			pdf.SetLineWidth(0.4)
		}
		x1, y1 := toPage(ls.Seg.A)
		x2, y2 := toPage(ls.Seg.B)
		pdf.Line(x1, y1, x2, y2)
	}

	// Point markers with labels.
	pdf.SetFillColor(240, 210, 60)
	pdf.SetFont("Helvetica", "", 9)
	for _, np := range figure.Points() {
		x, y := toPage(np.Pos)
		pdf.Circle(x, y, 1.2, "F")
		pdf.Text(x+2, y-2, np.Label)
	}

	// Readouts under the figure.
	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "", 10)
	y := 230.0
	pdf.Text(20, y, fmt.Sprintf("Mode: %s", figure.Mode()))
	for _, r := range cs.Readouts {
		y += 6
		pdf.Text(20, y, r.Text)
	}

	return pdf.OutputFileAndClose(path)
}
