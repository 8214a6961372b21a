package workspace

import "github.com/vilosource/viloxterm/internal/domain/entity"

// Serialize returns the versioned document representing the full workspace
// state, suitable for persistence.
func (m *Model) Serialize() *entity.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return entity.SnapshotFromWorkspaceState(m.state)
}

// Deserialize replaces the model's state with the one restored from doc,
// recovering per-node corruption with placeholder leaves rather than
// failing the whole restore, and notifies observers with a recovery flag
// when the document's version didn't match what this build expects.
func (m *Model) Deserialize(doc *entity.SessionState) {
	recovered := doc == nil || doc.Version != entity.SessionStateVersion

	m.mu.Lock()
	m.state = entity.RestoreWorkspaceState(doc)
	m.mu.Unlock()

	m.notify(EventStateRestored, map[string]any{"recovered": recovered})
}
