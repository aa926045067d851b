// SPDX-License-Identifier: Apache-2.0

package service

import (
	"sync"

	"gallerysync/models"
)

// ItemRepository is the in-memory ordered collection of gallery items,
// the single source of truth for selection and sync status. It is
// mutated exclusively by the sync controller; reads may happen from any
// goroutine and always see fully-formed snapshots.
//
// All accessor methods copy items out. Callers never receive a live
// reference into the backing slice.
type ItemRepository struct {
	mu            sync.RWMutex
	items         []models.GalleryItem
	index         map[string]int
	selectedCount int
}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{index: make(map[string]int)}
}

// ReplaceAll atomically swaps the entire collection, preserving the
// given order. Selection is implicitly cleared: the new items are new
// values.
func (r *ItemRepository) ReplaceAll(items []models.GalleryItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]models.GalleryItem, len(items))
	copy(r.items, items)
	r.reindex()
}

// MergeRemote appends the given items, keeping only those whose ID is
// not already present. Existing items are left untouched.
func (r *ItemRepository) MergeRemote(items []models.GalleryItem) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	added := 0
	for _, item := range items {
		if _, ok := r.index[item.ID]; ok {
			continue
		}
		r.items = append(r.items, item)
		r.index[item.ID] = len(r.items) - 1
		added++
	}
	return added
}

// Remove drops the item with the given ID, preserving the order of the
// rest. No-op when the ID is absent.
func (r *ItemRepository) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return
	}
	if r.items[i].Selected {
		r.selectedCount--
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	r.reindex()
}

// Get returns a copy of the item with the given ID.
func (r *ItemRepository) Get(id string) (models.GalleryItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return models.GalleryItem{}, false
	}
	return r.items[i], true
}

// Items returns a snapshot of the whole collection in original order.
func (r *ItemRepository) Items() []models.GalleryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.GalleryItem, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of items held.
func (r *ItemRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// SetSelected sets the selection flag of one item and keeps the
// selection count in step. No-op when the ID is absent.
func (r *ItemRepository) SetSelected(id string, selected bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok || r.items[i].Selected == selected {
		return
	}
	r.items[i].Selected = selected
	if selected {
		r.selectedCount++
	} else {
		r.selectedCount--
	}
}

// ToggleSelected flips the selection flag of one item. No-op when the
// ID is absent.
func (r *ItemRepository) ToggleSelected(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return
	}
	r.items[i].Selected = !r.items[i].Selected
	if r.items[i].Selected {
		r.selectedCount++
	} else {
		r.selectedCount--
	}
}

// SelectAll marks every item selected.
func (r *ItemRepository) SelectAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		r.items[i].Selected = true
	}
	r.selectedCount = len(r.items)
}

// ClearSelection unmarks every item.
func (r *ItemRepository) ClearSelection() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		r.items[i].Selected = false
	}
	r.selectedCount = 0
}

// SelectedCount returns the number of items with the selection flag
// set. Always recomputed synchronously by the mutating calls, never
// stale.
func (r *ItemRepository) SelectedCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selectedCount
}

// SelectedItems returns the selected items in original collection
// order.
func (r *ItemRepository) SelectedItems() []models.GalleryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.GalleryItem, 0, r.selectedCount)
	for _, item := range r.items {
		if item.Selected {
			out = append(out, item)
		}
	}
	return out
}

// UnsyncedItems returns, in original order, the items eligible for an
// upload batch: everything not yet uploaded and not currently in
// flight.
func (r *ItemRepository) UnsyncedItems() []models.GalleryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.GalleryItem, 0, len(r.items))
	for _, item := range r.items {
		if item.Status != models.StatusUploaded && !item.Status.InFlight() {
			out = append(out, item)
		}
	}
	return out
}

// SetStatus transitions one item through the sync state machine.
// Illegal transitions and absent IDs are silently ignored: an item may
// have been removed by a concurrent reload, which is a benign race.
//
// Entering Uploading or Downloading clears the previous failure detail;
// only the latest failure is ever retained.
func (r *ItemRepository) SetStatus(id string, status models.SyncStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok || !legalTransition(r.items[i].Status, status) {
		return
	}
	r.applyStatus(i, status)
}

// MarkUploaded resolves an in-flight item to Uploaded and records its
// remote location.
func (r *ItemRepository) MarkUploaded(id, cloudURL string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok || !legalTransition(r.items[i].Status, models.StatusUploaded) {
		return
	}
	r.applyStatus(i, models.StatusUploaded)
	r.items[i].CloudURL = cloudURL
}

// MarkFailed resolves an in-flight item to Failed and records the
// failure detail.
func (r *ItemRepository) MarkFailed(id string, cause *models.SyncError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok || !legalTransition(r.items[i].Status, models.StatusFailed) {
		return
	}
	r.applyStatus(i, models.StatusFailed)
	r.items[i].Err = cause
}

// MarkNotSynced reverts one item to the initial status, dropping its
// remote location and failure detail. Used after a successful remote
// delete of a locally held item.
func (r *ItemRepository) MarkNotSynced(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return
	}
	r.items[i].Status = models.StatusNotSynced
	r.items[i].Err = nil
	r.items[i].CloudURL = ""
}

// ResetInFlight reverts every Uploading or Downloading item back to
// NotSynced. Called on cancellation so late batch results find only
// terminal or initial states. Returns the number of items reverted.
func (r *ItemRepository) ResetInFlight() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	reverted := 0
	for i := range r.items {
		if r.items[i].Status.InFlight() {
			r.items[i].Status = models.StatusNotSynced
			r.items[i].Err = nil
			reverted++
		}
	}
	return reverted
}

// applyStatus writes the status and keeps the derived fields honest:
// leaving Uploaded drops the remote location, entering an in-flight
// state drops the old failure detail. Caller holds the write lock.
func (r *ItemRepository) applyStatus(i int, status models.SyncStatus) {
	r.items[i].Status = status
	if status != models.StatusFailed {
		r.items[i].Err = nil
	}
	if status != models.StatusUploaded {
		r.items[i].CloudURL = ""
	}
}

func (r *ItemRepository) reindex() {
	r.index = make(map[string]int, len(r.items))
	r.selectedCount = 0
	for i, item := range r.items {
		r.index[item.ID] = i
		if item.Selected {
			r.selectedCount++
		}
	}
}

// legalTransition encodes the item state machine:
//
//	NotSynced|Failed → Uploading|Downloading
//	Uploading|Downloading → Uploaded|Failed
//
// No transition skips the in-flight states and nothing leaves a
// terminal state on its own.
func legalTransition(from, to models.SyncStatus) bool {
	switch to {
	case models.StatusUploading, models.StatusDownloading:
		return from == models.StatusNotSynced || from == models.StatusFailed
	case models.StatusUploaded, models.StatusFailed:
		return from.InFlight()
	default:
		return false
	}
}
