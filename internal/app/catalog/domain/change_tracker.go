package domain

// ChangeTracker records which aggregate fields have been modified so that
// repositories can build update mutations covering only the changed columns.
type ChangeTracker struct {
	dirty map[string]bool
}

// NewChangeTracker creates an empty ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirty: make(map[string]bool)}
}

// MarkDirty marks a field as modified.
func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirty[field] = true
}

// Dirty reports whether a field has been modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	return ct.dirty[field]
}

// HasChanges reports whether any field has been modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirty) > 0
}

// Clear resets all dirty markers.
func (ct *ChangeTracker) Clear() {
	ct.dirty = make(map[string]bool)
}
