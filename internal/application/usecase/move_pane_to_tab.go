package usecase

import (
	"fmt"

	"github.com/vilosource/viloxterm/internal/domain/entity"
)

// MovePaneToTabUseCase moves a pane from one tab's tree to another, creating
// the target tab if it does not already exist.
//
// It is pure domain manipulation: it depends only on entities and an ID generator.
type MovePaneToTabUseCase struct {
	idGenerator IDGenerator
}

func NewMovePaneToTabUseCase(idGenerator IDGenerator) *MovePaneToTabUseCase {
	return &MovePaneToTabUseCase{idGenerator: idGenerator}
}

type MovePaneToTabInput struct {
	TabList      *entity.TabList
	SourceTabID  entity.TabID
	SourcePaneID entity.PaneID
	TargetTabID  entity.TabID // empty means create new tab
}

type MovePaneToTabOutput struct {
	TargetTab       *entity.Tab
	MovedPaneNode   *entity.PaneNode
	SourceTabClosed bool
	NewTabCreated   bool
}

func (uc *MovePaneToTabUseCase) Execute(input MovePaneToTabInput) (*MovePaneToTabOutput, error) {
	if err := validateMovePaneToTabInput(uc, input); err != nil {
		return nil, err
	}

	sourceTab, err := findSourceTab(input.TabList, input.SourceTabID)
	if err != nil {
		return nil, err
	}

	movedPane, sourceNode, err := findSourcePane(sourceTab, input.SourcePaneID)
	if err != nil {
		return nil, err
	}

	if detachErr := detachPaneFromTab(sourceTab, sourceNode); detachErr != nil {
		return nil, detachErr
	}

	sourceTabClosed := closeSourceTabIfEmpty(input.TabList, sourceTab)

	targetTab, newTabCreated, err := uc.resolveTargetTab(input.TabList, input.TargetTabID, movedPane)
	if err != nil {
		return nil, err
	}
	if targetTab == nil || targetTab.Tree == nil {
		return nil, fmt.Errorf("target tab is nil")
	}

	if newTabCreated {
		return &MovePaneToTabOutput{
			TargetTab:       targetTab,
			MovedPaneNode:   targetTab.Tree,
			SourceTabClosed: sourceTabClosed,
			NewTabCreated:   true,
		}, nil
	}

	movedNode, err := uc.insertIntoTargetTab(targetTab, movedPane)
	if err != nil {
		return nil, err
	}

	return &MovePaneToTabOutput{
		TargetTab:       targetTab,
		MovedPaneNode:   movedNode,
		SourceTabClosed: sourceTabClosed,
		NewTabCreated:   false,
	}, nil
}

func validateMovePaneToTabInput(uc *MovePaneToTabUseCase, input MovePaneToTabInput) error {
	if uc == nil {
		return fmt.Errorf("move pane to tab use case is nil")
	}
	if input.TabList == nil {
		return fmt.Errorf("tab list is required")
	}
	if input.SourceTabID == "" {
		return fmt.Errorf("source tab id is required")
	}
	if input.SourcePaneID == "" {
		return fmt.Errorf("source pane id is required")
	}
	if input.TargetTabID == input.SourceTabID {
		return fmt.Errorf("cannot move pane to same tab")
	}
	return nil
}

func findSourceTab(tl *entity.TabList, id entity.TabID) (*entity.Tab, error) {
	sourceTab := tl.Find(id)
	if sourceTab == nil {
		return nil, fmt.Errorf("source tab not found: %s", id)
	}
	if sourceTab.Tree == nil {
		return nil, fmt.Errorf("source tab has no pane tree")
	}
	return sourceTab, nil
}

func findSourcePane(tab *entity.Tab, paneID entity.PaneID) (*entity.Pane, *entity.PaneNode, error) {
	if tab == nil {
		return nil, nil, fmt.Errorf("tab is required")
	}
	sourceNode := tab.FindPane(paneID)
	if sourceNode == nil || sourceNode.Pane == nil {
		return nil, nil, fmt.Errorf("source pane not found: %s", paneID)
	}
	return sourceNode.Pane, sourceNode, nil
}

func closeSourceTabIfEmpty(tl *entity.TabList, sourceTab *entity.Tab) bool {
	if tl == nil || sourceTab == nil {
		return false
	}
	if sourceTab.PaneCount() != 0 {
		return false
	}
	return tl.Remove(sourceTab.ID)
}

func (uc *MovePaneToTabUseCase) resolveTargetTab(
	tl *entity.TabList,
	targetID entity.TabID,
	movedPane *entity.Pane,
) (*entity.Tab, bool, error) {
	if tl == nil {
		return nil, false, fmt.Errorf("tab list is required")
	}
	if movedPane == nil {
		return nil, false, fmt.Errorf("moved pane is required")
	}

	if targetID != "" {
		if targetTab := tl.Find(targetID); targetTab != nil {
			return targetTab, false, nil
		}
		// Treat missing as "create new".
	}

	if uc.idGenerator == nil {
		return nil, false, fmt.Errorf("id generator is required to create new tab")
	}
	tabID := entity.TabID(uc.idGenerator())
	targetTab := entity.NewTab(tabID, uc.idGenerator(), movedPane)
	tl.Add(targetTab)
	return targetTab, true, nil
}

func (uc *MovePaneToTabUseCase) insertIntoTargetTab(tab *entity.Tab, movedPane *entity.Pane) (*entity.PaneNode, error) {
	if tab == nil {
		return nil, fmt.Errorf("tab is required")
	}
	if movedPane == nil {
		return nil, fmt.Errorf("moved pane is required")
	}

	movedNode := &entity.PaneNode{ID: string(movedPane.ID), Pane: movedPane}

	if tab.Tree == nil {
		tab.Tree = movedNode
		tab.ActivePane = movedPane.ID
		return movedNode, nil
	}

	targetActive := tab.ActivePaneNode()
	if targetActive == nil || targetActive.Pane == nil {
		return nil, fmt.Errorf("target tab has no active pane")
	}

	if err := insertPaneRightOfActive(tab, targetActive, movedNode, uc.idGenerator); err != nil {
		return nil, err
	}
	tab.ActivePane = movedPane.ID
	return movedNode, nil
}

func detachPaneFromTab(tab *entity.Tab, leaf *entity.PaneNode) error {
	if tab == nil {
		return fmt.Errorf("tab is required")
	}
	if leaf == nil || leaf.Pane == nil {
		return fmt.Errorf("pane node is required")
	}
	if !leaf.IsLeaf() {
		return fmt.Errorf("can only move leaf panes")
	}
	return detachLeafFromTab(tab, leaf)
}

func detachLeafFromTab(tab *entity.Tab, leaf *entity.PaneNode) error {
	parent := leaf.Parent
	if parent == nil {
		tab.Tree = nil
		tab.ActivePane = ""
		return nil
	}
	if !parent.IsSplit() {
		return fmt.Errorf("pane parent is not a split")
	}

	sibling := findSibling(parent, leaf)
	if sibling == nil {
		return fmt.Errorf("no sibling found")
	}

	promoteSibling(tab, parent, sibling)
	tab.ActivePane = findFirstLeafPaneID(sibling)
	return nil
}

func findSibling(parent, leaf *entity.PaneNode) *entity.PaneNode {
	if parent == nil {
		return nil
	}
	for _, child := range parent.Children {
		if child != leaf {
			return child
		}
	}
	return nil
}

func promoteSibling(tab *entity.Tab, parent, sibling *entity.PaneNode) {
	if tab == nil || sibling == nil {
		return
	}

	grandparent := parent.Parent
	if grandparent == nil {
		tab.Tree = sibling
		sibling.Parent = nil
		return
	}
	for i, child := range grandparent.Children {
		if child == parent {
			grandparent.Children[i] = sibling
			break
		}
	}
	sibling.Parent = grandparent
}

func findFirstLeafPaneID(node *entity.PaneNode) entity.PaneID {
	if node == nil {
		return ""
	}
	var active entity.PaneID
	node.Walk(func(n *entity.PaneNode) bool {
		if n.IsLeaf() && n.Pane != nil {
			active = n.Pane.ID
			return false
		}
		return true
	})
	return active
}

func insertPaneRightOfActive(tab *entity.Tab, activeNode, newLeaf *entity.PaneNode, idGen IDGenerator) error {
	if tab == nil {
		return fmt.Errorf("tab is required")
	}
	if activeNode == nil {
		return fmt.Errorf("active pane is required")
	}
	if newLeaf == nil || newLeaf.Pane == nil {
		return fmt.Errorf("new pane node is required")
	}
	if idGen == nil {
		return fmt.Errorf("id generator is required")
	}

	targetNode := activeNode

	parentID := idGen()
	splitParent := &entity.PaneNode{
		ID:          parentID,
		Orientation: entity.Horizontal,
		Ratio:       0.5,
		Children:    make([]*entity.PaneNode, 2),
	}

	splitParent.Children[0] = targetNode
	splitParent.Children[1] = newLeaf

	newLeaf.Parent = splitParent
	oldParent := targetNode.Parent
	targetNode.Parent = splitParent

	if oldParent == nil {
		tab.Tree = splitParent
	} else {
		for i, child := range oldParent.Children {
			if child == targetNode {
				oldParent.Children[i] = splitParent
				break
			}
		}
		splitParent.Parent = oldParent
	}

	return nil
}
