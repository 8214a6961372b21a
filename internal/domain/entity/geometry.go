package entity

import "math"

// Rect is a pane's normalized screen region within its tab, with coordinates
// in [0,1] relative to the tab's content area. Used by geometric pane
// navigation (find_pane_in_direction) to score candidates by position
// rather than by tree adjacency.
type Rect struct {
	PaneID PaneID
	X0, Y0 float64 // top-left
	X1, Y1 float64 // bottom-right
}

// Width and Height return the rectangle's extent.
func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Center returns the rectangle's center point.
func (r Rect) Center() (cx, cy float64) {
	return (r.X0 + r.X1) / 2, (r.Y0 + r.Y1) / 2
}

// OverlapHorizontal returns the magnitude of shared horizontal (X-axis)
// extent between r and other, or 0 if they don't overlap. Used to rank
// vertical-direction navigation candidates by how much of the source's
// width they line up under/over, not merely whether they do.
func (r Rect) OverlapHorizontal(other Rect) float64 {
	lo := math.Max(r.X0, other.X0)
	hi := math.Min(r.X1, other.X1)
	return math.Max(0, hi-lo)
}

// OverlapVertical returns the magnitude of shared vertical (Y-axis) extent
// between r and other, or 0 if they don't overlap. Used to rank
// horizontal-direction navigation candidates.
func (r Rect) OverlapVertical(other Rect) float64 {
	lo := math.Max(r.Y0, other.Y0)
	hi := math.Min(r.Y1, other.Y1)
	return math.Max(0, hi-lo)
}

// computeBounds recursively assigns each leaf a Rect by subdividing the
// given region according to each split's orientation and ratio.
func computeBounds(node *PaneNode, region Rect, out map[PaneID]Rect) {
	if node == nil {
		return
	}
	if node.IsLeaf() {
		region.PaneID = node.Pane.ID
		out[node.Pane.ID] = region
		return
	}
	ratio := ClampRatio(node.Ratio)
	if ratio == 0 {
		ratio = 0.5
	}
	first := node.First()
	second := node.Second()
	switch node.Orientation {
	case Vertical:
		mid := region.Y0 + region.Height()*ratio
		computeBounds(first, Rect{X0: region.X0, Y0: region.Y0, X1: region.X1, Y1: mid}, out)
		computeBounds(second, Rect{X0: region.X0, Y0: mid, X1: region.X1, Y1: region.Y1}, out)
	default: // Horizontal
		mid := region.X0 + region.Width()*ratio
		computeBounds(first, Rect{X0: region.X0, Y0: region.Y0, X1: mid, Y1: region.Y1}, out)
		computeBounds(second, Rect{X0: mid, Y0: region.Y0, X1: region.X1, Y1: region.Y1}, out)
	}
}

// ComputeBounds returns the normalized Rect of every leaf pane in the tree,
// computed by recursively subdividing the unit square [0,1]x[0,1].
func ComputeBounds(root *PaneNode) map[PaneID]Rect {
	bounds := make(map[PaneID]Rect)
	computeBounds(root, Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}, bounds)
	return bounds
}
