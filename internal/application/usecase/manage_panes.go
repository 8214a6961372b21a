package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/vilosource/viloxterm/internal/domain/entity"
	"github.com/vilosource/viloxterm/internal/logging"
)

// SplitDirection indicates where the new pane lands relative to the target.
type SplitDirection string

const (
	SplitLeft  SplitDirection = "left"
	SplitRight SplitDirection = "right"
	SplitUp    SplitDirection = "up"
	SplitDown  SplitDirection = "down"
)

// NavigateDirection indicates the direction for focus navigation.
type NavigateDirection string

const (
	NavLeft  NavigateDirection = "left"
	NavRight NavigateDirection = "right"
	NavUp    NavigateDirection = "up"
	NavDown  NavigateDirection = "down"
)

// ResizeDirection indicates the direction for pane resizing.
type ResizeDirection string

const (
	ResizeIncreaseLeft  ResizeDirection = "increase_left"
	ResizeIncreaseRight ResizeDirection = "increase_right"
	ResizeIncreaseUp    ResizeDirection = "increase_up"
	ResizeIncreaseDown  ResizeDirection = "increase_down"

	ResizeDecreaseLeft  ResizeDirection = "decrease_left"
	ResizeDecreaseRight ResizeDirection = "decrease_right"
	ResizeDecreaseUp    ResizeDirection = "decrease_up"
	ResizeDecreaseDown  ResizeDirection = "decrease_down"
)

// ErrNothingToResize is returned when there is no applicable split ancestor.
var ErrNothingToResize = errors.New("nothing to resize")

// ManagePanesUseCase handles pane tree mutations within a single tab: split,
// close, resize, and focus. All operations are scoped to the tab passed in —
// the caller (workspace model) resolves which tab is active.
type ManagePanesUseCase struct {
	idGenerator IDGenerator
}

// NewManagePanesUseCase creates a new pane management use case.
func NewManagePanesUseCase(idGenerator IDGenerator) *ManagePanesUseCase {
	return &ManagePanesUseCase{idGenerator: idGenerator}
}

// SplitPaneInput contains parameters for splitting a pane.
type SplitPaneInput struct {
	Tab        *entity.Tab
	TargetPane *entity.PaneNode
	Direction  SplitDirection
	WidgetKind entity.WidgetKind
}

// SplitPaneOutput contains the result of a split operation.
type SplitPaneOutput struct {
	NewPaneNode *entity.PaneNode
	ParentNode  *entity.PaneNode
	SplitRatio  float64
}

// Split creates a new pane adjacent to the target pane, replacing it in the
// tree with a new split node whose two children are the target and the new
// pane (ordered per direction). The new ratio is 0.5.
func (uc *ManagePanesUseCase) Split(ctx context.Context, input SplitPaneInput) (*SplitPaneOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("direction", string(input.Direction)).Str("target_id", input.TargetPane.ID).Msg("splitting pane")

	if input.Tab == nil {
		return nil, fmt.Errorf("tab is required")
	}
	if input.TargetPane == nil || !input.TargetPane.IsLeaf() {
		return nil, fmt.Errorf("target pane must be a leaf")
	}

	paneID := entity.PaneID(uc.idGenerator())
	newPane := entity.NewPane(paneID, input.WidgetKind)
	newPaneNode := &entity.PaneNode{ID: string(paneID), Pane: newPane}

	var orientation entity.Orientation
	switch input.Direction {
	case SplitLeft, SplitRight:
		orientation = entity.Horizontal
	case SplitUp, SplitDown:
		orientation = entity.Vertical
	default:
		return nil, fmt.Errorf("invalid split direction: %s", input.Direction)
	}

	targetNode := input.TargetPane
	parentNode := &entity.PaneNode{
		ID:          uc.idGenerator(),
		Orientation: orientation,
		Ratio:       0.5,
		Children:    make([]*entity.PaneNode, 2),
	}

	switch input.Direction {
	case SplitLeft, SplitUp:
		parentNode.Children[0] = newPaneNode
		parentNode.Children[1] = targetNode
	case SplitRight, SplitDown:
		parentNode.Children[0] = targetNode
		parentNode.Children[1] = newPaneNode
	}
	newPaneNode.Parent = parentNode

	oldParent := targetNode.Parent
	targetNode.Parent = parentNode
	if oldParent == nil {
		input.Tab.Tree = parentNode
	} else {
		for i, child := range oldParent.Children {
			if child == targetNode {
				oldParent.Children[i] = parentNode
				break
			}
		}
		parentNode.Parent = oldParent
	}

	input.Tab.ActivePane = newPane.ID

	log.Info().Str("new_pane_id", string(newPane.ID)).Str("parent_id", parentNode.ID).Msg("pane split completed")

	return &SplitPaneOutput{NewPaneNode: newPaneNode, ParentNode: parentNode, SplitRatio: 0.5}, nil
}

// Close removes a leaf pane and promotes its sibling to take the position of
// the parent split. If the closed pane was active, the successor is the
// first leaf of the promoted subtree in reading order. Rejects closing the
// sole pane of a tab.
func (uc *ManagePanesUseCase) Close(ctx context.Context, tab *entity.Tab, paneNode *entity.PaneNode) (*entity.PaneNode, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("pane_id", paneNode.ID).Msg("closing pane")

	if tab == nil {
		return nil, fmt.Errorf("tab is required")
	}
	if paneNode == nil || !paneNode.IsLeaf() {
		return nil, fmt.Errorf("pane node must be a leaf")
	}

	parent := paneNode.Parent
	if parent == nil {
		return nil, fmt.Errorf("cannot close last pane in tab")
	}

	var sibling *entity.PaneNode
	for _, child := range parent.Children {
		if child != paneNode {
			sibling = child
			break
		}
	}
	if sibling == nil {
		return nil, fmt.Errorf("no sibling found for pane")
	}

	grandparent := parent.Parent
	if grandparent == nil {
		tab.Tree = sibling
		sibling.Parent = nil
	} else {
		for i, child := range grandparent.Children {
			if child == parent {
				grandparent.Children[i] = sibling
				break
			}
		}
		sibling.Parent = grandparent
	}

	if tab.ActivePane == paneNode.Pane.ID {
		if successor := sibling.FirstLeaf(); successor != nil {
			tab.ActivePane = successor.Pane.ID
		} else {
			tab.ActivePane = ""
		}
	}

	log.Info().Str("closed_pane_id", paneNode.ID).Str("promoted_sibling_id", sibling.ID).Msg("pane closed")
	return sibling, nil
}

// Focus sets the active pane, clearing focus on all other panes in the tab.
func (uc *ManagePanesUseCase) Focus(ctx context.Context, tab *entity.Tab, paneID entity.PaneID) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("pane_id", string(paneID)).Msg("focusing pane")

	if tab == nil {
		return fmt.Errorf("tab is required")
	}
	target := tab.FindPane(paneID)
	if target == nil {
		return fmt.Errorf("pane not found: %s", paneID)
	}

	for _, leaf := range tab.Tree.Leaves() {
		leaf.Pane.Focused = leaf.Pane.ID == paneID
	}
	tab.ActivePane = paneID

	log.Info().Str("pane_id", string(paneID)).Msg("pane focused")
	return nil
}

// NavigateFocus moves focus to the adjacent pane in the given direction using
// tree structure (nearest ancestor split on the matching axis).
func (uc *ManagePanesUseCase) NavigateFocus(ctx context.Context, tab *entity.Tab, direction NavigateDirection) (*entity.PaneNode, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("direction", string(direction)).Msg("navigating focus")

	if tab == nil {
		return nil, fmt.Errorf("tab is required")
	}
	activeNode := tab.ActivePaneNode()
	if activeNode == nil {
		return nil, fmt.Errorf("no active pane")
	}

	target := findAdjacentPane(activeNode, direction)
	if target == nil {
		log.Debug().Msg("no adjacent pane found")
		return nil, nil
	}

	tab.ActivePane = target.Pane.ID
	log.Info().Str("from", activeNode.ID).Str("to", target.ID).Msg("focus navigated")
	return target, nil
}

func findAdjacentPane(node *entity.PaneNode, direction NavigateDirection) *entity.PaneNode {
	isHorizontal := direction == NavLeft || direction == NavRight
	isForward := direction == NavRight || direction == NavDown

	current := node
	for current.Parent != nil {
		parent := current.Parent
		parentIsHorizontal := parent.Orientation == entity.Horizontal

		if parentIsHorizontal == isHorizontal {
			childIndex := -1
			for i, child := range parent.Children {
				if child == current {
					childIndex = i
					break
				}
			}
			targetIndex := childIndex - 1
			if isForward {
				targetIndex = childIndex + 1
			}
			if targetIndex >= 0 && targetIndex < len(parent.Children) {
				return findLeafInDirection(parent.Children[targetIndex], !isForward)
			}
		}
		current = parent
	}
	return nil
}

func findLeafInDirection(node *entity.PaneNode, fromEnd bool) *entity.PaneNode {
	if node == nil {
		return nil
	}
	if node.IsLeaf() {
		return node
	}
	if fromEnd {
		return findLeafInDirection(node.Second(), fromEnd)
	}
	return findLeafInDirection(node.First(), fromEnd)
}

// GeometricNavigationInput contains data for geometric focus navigation.
type GeometricNavigationInput struct {
	ActivePaneID entity.PaneID
	PaneRects    []entity.Rect
	Direction    NavigateDirection
}

// GeometricNavigationOutput contains the result.
type GeometricNavigationOutput struct {
	TargetPaneID entity.PaneID
	Found        bool
}

// NavigateFocusGeometric finds the nearest pane in the given direction by
// position rather than tree adjacency: candidates in-direction are ordered
// by (-overlap_on_perpendicular_axis, distance_along_direction), with ties
// broken by extreme position on the direction axis.
func (uc *ManagePanesUseCase) NavigateFocusGeometric(ctx context.Context, input GeometricNavigationInput) (*GeometricNavigationOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("direction", string(input.Direction)).Str("active", string(input.ActivePaneID)).
		Int("candidates", len(input.PaneRects)).Msg("geometric navigation")

	var activeRect *entity.Rect
	for i := range input.PaneRects {
		if input.PaneRects[i].PaneID == input.ActivePaneID {
			activeRect = &input.PaneRects[i]
			break
		}
	}
	if activeRect == nil {
		return &GeometricNavigationOutput{Found: false}, nil
	}

	candidates := scoreNavigationCandidates(*activeRect, input.PaneRects, input.Direction)
	if len(candidates) == 0 {
		return &GeometricNavigationOutput{Found: false}, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].less(candidates[j], input.Direction) })

	log.Debug().Str("target", string(candidates[0].paneID)).Float64("overlap", candidates[0].overlap).
		Float64("distance", candidates[0].distance).Msg("geometric navigation found target")
	return &GeometricNavigationOutput{TargetPaneID: candidates[0].paneID, Found: true}, nil
}

// navCandidate is a pane eligible for geometric navigation, ordered by
// (-overlap, distance), with ties broken by the extreme position on the
// direction axis.
type navCandidate struct {
	paneID        entity.PaneID
	overlap       float64
	distance      float64
	directionEdge float64
}

// less implements the candidate ordering: greatest perpendicular overlap
// first, then smallest distance along the direction, then — on exact ties —
// the extreme position on the direction axis (leftmost for Right, rightmost
// for Left, topmost for Down, bottommost for Up).
func (c navCandidate) less(other navCandidate, direction NavigateDirection) bool {
	if c.overlap != other.overlap {
		return c.overlap > other.overlap
	}
	if c.distance != other.distance {
		return c.distance < other.distance
	}
	switch direction {
	case NavRight, NavDown:
		return c.directionEdge < other.directionEdge
	default: // NavLeft, NavUp
		return c.directionEdge > other.directionEdge
	}
}

func scoreNavigationCandidates(activeRect entity.Rect, rects []entity.Rect, direction NavigateDirection) []navCandidate {
	acx, acy := activeRect.Center()
	var candidates []navCandidate

	for _, rect := range rects {
		if rect.PaneID == activeRect.PaneID {
			continue
		}
		cx, cy := rect.Center()
		dx := cx - acx
		dy := cy - acy

		inDirection, distance, overlap, directionEdge := evalDirection(activeRect, rect, dx, dy, direction)
		if inDirection {
			candidates = append(candidates, navCandidate{
				paneID:        rect.PaneID,
				overlap:       overlap,
				distance:      distance,
				directionEdge: directionEdge,
			})
		}
	}
	return candidates
}

// evalDirection reports whether rect lies on the target side of activeRect
// for direction, and if so its distance along the direction axis, its
// perpendicular-overlap magnitude with activeRect, and its leading edge on
// the direction axis (used for the extreme-position tiebreak).
func evalDirection(activeRect, rect entity.Rect, dx, dy float64, direction NavigateDirection) (inDirection bool, distance, overlap, directionEdge float64) {
	switch direction {
	case NavLeft:
		return dx < 0, math.Abs(dx), activeRect.OverlapVertical(rect), rect.X1
	case NavRight:
		return dx > 0, math.Abs(dx), activeRect.OverlapVertical(rect), rect.X0
	case NavUp:
		return dy < 0, math.Abs(dy), activeRect.OverlapHorizontal(rect), rect.Y1
	case NavDown:
		return dy > 0, math.Abs(dy), activeRect.OverlapHorizontal(rect), rect.Y0
	default:
		return false, 0, 0, 0
	}
}

// SetSplitRatioInput contains parameters for directly setting a split ratio.
type SetSplitRatioInput struct {
	Tab         *entity.Tab
	SplitNodeID string
	Ratio       float64
}

// SetSplitRatio clamps and applies a new ratio to the named split node.
func (uc *ManagePanesUseCase) SetSplitRatio(ctx context.Context, input SetSplitRatioInput) error {
	log := logging.FromContext(ctx)
	if input.Tab == nil || input.Tab.Tree == nil {
		return ErrNothingToResize
	}
	if input.SplitNodeID == "" {
		return fmt.Errorf("split node id is required")
	}

	var splitNode *entity.PaneNode
	input.Tab.Tree.Walk(func(node *entity.PaneNode) bool {
		if node.ID == input.SplitNodeID {
			splitNode = node
			return false
		}
		return true
	})
	if splitNode == nil || !splitNode.IsSplit() {
		return fmt.Errorf("split node not found: %s", input.SplitNodeID)
	}

	old := splitNode.Ratio
	splitNode.Ratio = entity.ClampRatio(input.Ratio)
	log.Debug().Str("split_node_id", input.SplitNodeID).Float64("old_ratio", old).Float64("new_ratio", splitNode.Ratio).Msg("split ratio set")
	return nil
}

// Resize adjusts the nearest applicable split ratio for the given direction.
// stepPercent is applied per keystroke (e.g. 5.0 means 5%).
func (uc *ManagePanesUseCase) Resize(ctx context.Context, tab *entity.Tab, paneNode *entity.PaneNode, dir ResizeDirection, stepPercent float64) error {
	log := logging.FromContext(ctx)
	if tab == nil || tab.Tree == nil {
		return ErrNothingToResize
	}
	if paneNode == nil {
		return fmt.Errorf("pane node is required")
	}

	axis, ok := axisForResizeDirection(dir)
	if !ok {
		return ErrNothingToResize
	}
	splitNode := findNearestSplitForAxis(paneNode, axis)
	if splitNode == nil {
		return ErrNothingToResize
	}

	delta := deltaForDividerMove(dir, stepPercent)
	old := splitNode.Ratio
	splitNode.Ratio = entity.ClampRatio(splitNode.Ratio + delta)

	log.Debug().Str("direction", string(dir)).Float64("old_ratio", old).Float64("new_ratio", splitNode.Ratio).Msg("pane resized")
	return nil
}

type resizeAxis int

const (
	resizeAxisNone resizeAxis = iota
	resizeAxisHorizontal
	resizeAxisVertical
)

func axisForResizeDirection(dir ResizeDirection) (resizeAxis, bool) {
	switch dir {
	case ResizeIncreaseLeft, ResizeIncreaseRight, ResizeDecreaseLeft, ResizeDecreaseRight:
		return resizeAxisHorizontal, true
	case ResizeIncreaseUp, ResizeIncreaseDown, ResizeDecreaseUp, ResizeDecreaseDown:
		return resizeAxisVertical, true
	default:
		return resizeAxisNone, false
	}
}

func deltaForDividerMove(dir ResizeDirection, stepPercent float64) float64 {
	if stepPercent < 0 {
		stepPercent = -stepPercent
	}
	delta := stepPercent / 100.0

	switch dir {
	case ResizeIncreaseRight, ResizeIncreaseDown:
		return delta
	case ResizeIncreaseLeft, ResizeIncreaseUp:
		return -delta
	case ResizeDecreaseRight, ResizeDecreaseDown:
		return -delta
	case ResizeDecreaseLeft, ResizeDecreaseUp:
		return delta
	default:
		return 0
	}
}

func findNearestSplitForAxis(node *entity.PaneNode, axis resizeAxis) *entity.PaneNode {
	current := node
	for current != nil && current.Parent != nil {
		parent := current.Parent
		if parent.IsSplit() {
			if axis == resizeAxisHorizontal && parent.Orientation == entity.Horizontal {
				return parent
			}
			if axis == resizeAxisVertical && parent.Orientation == entity.Vertical {
				return parent
			}
		}
		current = parent
	}
	return nil
}

// GetAllPanes returns all leaf panes in a tab.
func (uc *ManagePanesUseCase) GetAllPanes(tab *entity.Tab) []*entity.Pane {
	if tab == nil || tab.Tree == nil {
		return nil
	}
	var panes []*entity.Pane
	for _, leaf := range tab.Tree.Leaves() {
		panes = append(panes, leaf.Pane)
	}
	return panes
}

// CountPanes returns the number of panes in a tab.
func (uc *ManagePanesUseCase) CountPanes(tab *entity.Tab) int {
	if tab == nil {
		return 0
	}
	return tab.PaneCount()
}
