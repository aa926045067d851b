package models

// BatchFailure records one item's failure within a batch operation.
type BatchFailure struct {
	// ItemID identifies the item whose remote call failed.
	ItemID string `json:"item_id"`

	// Err is the failure detail.
	Err *SyncError `json:"error"`
}

// BatchResult is the aggregated outcome of one batch operation. It is
// produced once per batch, after every per-item call has resolved, and
// consumed immediately by the sync controller.
type BatchResult struct {
	// Attempted is the number of items the batch dispatched.
	Attempted int `json:"attempted"`

	// Succeeded is the number of items whose remote call completed
	// without error. Always Attempted - len(Failures).
	Succeeded int `json:"succeeded"`

	// Failures lists the failed items in completion order. Within one
	// batch no ordering is guaranteed between item completions, so this
	// order is informational only.
	Failures []BatchFailure `json:"failures,omitempty"`
}

// Failed reports whether any item in the batch failed.
func (r BatchResult) Failed() bool {
	return len(r.Failures) > 0
}

// FirstFailure returns the first recorded failure, or nil when the
// whole batch succeeded. The controller surfaces it as the headline
// error while each item keeps its own detail.
func (r BatchResult) FirstFailure() *SyncError {
	if len(r.Failures) == 0 {
		return nil
	}
	return r.Failures[0].Err
}
