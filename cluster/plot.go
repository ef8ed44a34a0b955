package cluster

import "github.com/gogpu/locus"

// Mark sizes for cluster plots, in pixels.
const (
	DefaultDataSize     float32 = 3
	DefaultCentroidSize float32 = 9
)

// Plot is the chart element view of a KMeans run: member points colored
// by their cluster, centroids overlaid larger in the same colors.
type Plot struct {
	KMeans        *KMeans
	DataSize      float32
	CentroidSize  float32
	DataShape     locus.Shape
	CentroidShape locus.Shape
}

// Plot returns a chart element rendering the clustering's current
// state.
func (km *KMeans) Plot() *Plot {
	return &Plot{KMeans: km}
}

// DrawInView renders members then centroids through the view transform.
func (p *Plot) DrawInView(c locus.Canvas, view *locus.ViewTransformer, t *locus.Theme) {
	km := p.KMeans
	if km == nil {
		return
	}
	dataSize := p.DataSize
	if dataSize <= 0 {
		dataSize = DefaultDataSize
	}
	centroidSize := p.CentroidSize
	if centroidSize <= 0 {
		centroidSize = DefaultCentroidSize
	}
	for ci, member := range km.members {
		style := locus.MarkStyle{
			Shape: p.DataShape,
			Size:  dataSize,
			Color: t.Cycle.Color(ci),
		}
		for _, i := range member {
			locus.DrawMark(c, view.ToScreen(km.data.Points[i]), style)
		}
	}
	for ci, centroid := range km.centroids {
		locus.DrawMark(c, view.ToScreen(centroid), locus.MarkStyle{
			Shape: p.CentroidShape,
			Size:  centroidSize,
			Color: t.Cycle.Color(ci),
		})
	}
}

// DataBounds returns the clustered dataset's bounds.
func (p *Plot) DataBounds() locus.BBox[locus.Point] {
	if p.KMeans == nil {
		return locus.BBox[locus.Point]{}
	}
	return p.KMeans.data.Bounds()
}
