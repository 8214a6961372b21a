package usecase

import (
	"context"
	"fmt"

	"github.com/vilosource/viloxterm/internal/domain/entity"
	"github.com/vilosource/viloxterm/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// ManageTabsUseCase handles tab lifecycle operations: create, close, rename,
// duplicate, and activation.
type ManageTabsUseCase struct {
	idGenerator IDGenerator
}

// NewManageTabsUseCase creates a new tab management use case.
func NewManageTabsUseCase(idGenerator IDGenerator) *ManageTabsUseCase {
	return &ManageTabsUseCase{
		idGenerator: idGenerator,
	}
}

// CreateTabInput contains parameters for creating a new tab.
type CreateTabInput struct {
	State      *entity.WorkspaceState
	Name       string
	WidgetKind entity.WidgetKind
}

// CreateTabOutput contains the result of tab creation.
type CreateTabOutput struct {
	Tab *entity.Tab
}

// Create appends a tab with a single leaf of the given widget kind and sets
// it active.
func (uc *ManageTabsUseCase) Create(ctx context.Context, input CreateTabInput) (*CreateTabOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("name", input.Name).Str("widget_kind", string(input.WidgetKind)).Msg("creating new tab")

	if input.State == nil {
		return nil, fmt.Errorf("workspace state is required")
	}

	tabID := entity.TabID(uc.idGenerator())
	paneID := entity.PaneID(uc.idGenerator())
	pane := entity.NewPane(paneID, input.WidgetKind)

	tab := entity.NewTab(tabID, uc.idGenerator(), pane)
	tab.Name = input.Name

	input.State.Tabs.Add(tab)
	input.State.ActiveTabID = tab.ID

	log.Info().Str("tab_id", string(tabID)).Str("pane_id", string(paneID)).Msg("tab created")

	return &CreateTabOutput{Tab: tab}, nil
}

// Close removes a tab from the list. Rejects closing the last tab. If the
// closed tab was active, the first remaining tab becomes active.
func (uc *ManageTabsUseCase) Close(ctx context.Context, state *entity.WorkspaceState, tabID entity.TabID) error {
	ctx = logging.WithTabID(ctx, string(tabID))
	log := logging.FromContext(ctx)
	log.Debug().Msg("closing tab")

	if state == nil || state.Tabs == nil {
		return fmt.Errorf("workspace state is required")
	}

	if state.Tabs.Find(tabID) == nil {
		return fmt.Errorf("tab not found: %s", tabID)
	}
	if state.Tabs.Count() == 1 {
		return fmt.Errorf("cannot close last tab")
	}

	wasActive := state.ActiveTabID == tabID
	if !state.Tabs.Remove(tabID) {
		return fmt.Errorf("failed to remove tab")
	}
	if wasActive {
		state.ActiveTabID = state.Tabs.Tabs[0].ID
		state.Tabs.ActiveTabID = state.ActiveTabID
	}

	log.Info().Str("new_active", string(state.ActiveTabID)).Int("remaining", state.Tabs.Count()).Msg("tab closed")
	return nil
}

// Rename changes a tab's display name.
func (uc *ManageTabsUseCase) Rename(ctx context.Context, state *entity.WorkspaceState, tabID entity.TabID, name string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("tab_id", string(tabID)).Str("name", name).Msg("renaming tab")

	tab := mustFindTab(state, tabID)
	if tab == nil {
		return fmt.Errorf("tab not found: %s", tabID)
	}
	tab.Name = name
	log.Info().Str("tab_id", string(tabID)).Str("name", name).Msg("tab renamed")
	return nil
}

// SetActive activates the given tab.
func (uc *ManageTabsUseCase) SetActive(ctx context.Context, state *entity.WorkspaceState, tabID entity.TabID) error {
	log := logging.FromContext(ctx)

	tab := mustFindTab(state, tabID)
	if tab == nil {
		return fmt.Errorf("tab not found: %s", tabID)
	}

	old := state.ActiveTabID
	state.ActiveTabID = tabID
	state.Tabs.ActiveTabID = tabID

	log.Info().Str("from", string(old)).Str("to", string(tabID)).Msg("tab switched")
	return nil
}

// Duplicate deep-copies a tab's tree with new IDs throughout. widget_state
// is copied by value. The new tab is named "<original> (Copy)" and inserted
// immediately after the original.
func (uc *ManageTabsUseCase) Duplicate(ctx context.Context, state *entity.WorkspaceState, tabID entity.TabID) (*CreateTabOutput, error) {
	log := logging.FromContext(ctx)

	if state == nil || state.Tabs == nil {
		return nil, fmt.Errorf("workspace state is required")
	}
	original := state.Tabs.Find(tabID)
	if original == nil {
		return nil, fmt.Errorf("tab not found: %s", tabID)
	}

	newTree, activePane := uc.cloneNode(original.Tree, original.ActivePane)
	newTab := &entity.Tab{
		ID:         entity.TabID(uc.idGenerator()),
		Name:       original.Title() + " (Copy)",
		Tree:       newTree,
		ActivePane: activePane,
		Metadata:   make(map[string]any),
	}

	pos := state.Tabs.IndexOf(tabID)
	state.Tabs.Insert(pos+1, newTab)

	log.Info().Str("original_tab_id", string(tabID)).Str("new_tab_id", string(newTab.ID)).Msg("tab duplicated")
	return &CreateTabOutput{Tab: newTab}, nil
}

// cloneNode deep-copies a subtree assigning fresh node/pane IDs, tracking the
// new ID for the pane that was active in the source tree.
func (uc *ManageTabsUseCase) cloneNode(node *entity.PaneNode, activeSrc entity.PaneID) (*entity.PaneNode, entity.PaneID) {
	if node == nil {
		return nil, ""
	}
	if node.IsLeaf() {
		clone := node.Pane.Clone()
		clone.ID = entity.PaneID(uc.idGenerator())
		newNode := &entity.PaneNode{ID: uc.idGenerator(), Pane: clone}
		if node.Pane.ID == activeSrc {
			return newNode, clone.ID
		}
		return newNode, ""
	}

	first, activeFirst := uc.cloneNode(node.First(), activeSrc)
	second, activeSecond := uc.cloneNode(node.Second(), activeSrc)
	newNode := &entity.PaneNode{
		ID:          uc.idGenerator(),
		Orientation: node.Orientation,
		Ratio:       node.Ratio,
		Children:    []*entity.PaneNode{first, second},
	}
	first.Parent = newNode
	second.Parent = newNode

	if activeFirst != "" {
		return newNode, activeFirst
	}
	return newNode, activeSecond
}

// Next returns the tab ID that would become active after a tab.next or
// tab.previous command, wrapping around the ends.
func (uc *ManageTabsUseCase) Next(state *entity.WorkspaceState, direction int) entity.TabID {
	if state == nil || state.Tabs == nil || state.Tabs.Count() == 0 {
		return ""
	}
	pos := state.Tabs.IndexOf(state.ActiveTabID)
	if pos < 0 {
		return state.Tabs.Tabs[0].ID
	}
	n := state.Tabs.Count()
	newPos := ((pos+direction)%n + n) % n
	return state.Tabs.Tabs[newPos].ID
}

func mustFindTab(state *entity.WorkspaceState, tabID entity.TabID) *entity.Tab {
	if state == nil || state.Tabs == nil {
		return nil
	}
	return state.Tabs.Find(tabID)
}
