// package tasks implements the page-level orchestration engines.
//
// Each engine coordinates the backend calls one page needs: the detail
// fan-out, the collection resolution pool, and paged search. Engines emit
// progress updates via channels for non-blocking status reporting to
// CLI/UI layers.
package tasks

// sendProgress sends a progress update through the channel without blocking.
// If the channel is full or nil, the update is dropped.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
