package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchDetails Phase = iota
	FetchCredits
	FetchKeywords
	FetchProviders
	FetchVideos
	FetchImages
	FetchProfile
	FetchLists
	ResolveTitles
	RemoveEntry
	SearchTitles
)

func (p Phase) String() string {
	switch p {
	case FetchDetails:
		return "fetch_details"
	case FetchCredits:
		return "fetch_credits"
	case FetchKeywords:
		return "fetch_keywords"
	case FetchProviders:
		return "fetch_providers"
	case FetchVideos:
		return "fetch_videos"
	case FetchImages:
		return "fetch_images"
	case FetchProfile:
		return "fetch_profile"
	case FetchLists:
		return "fetch_lists"
	case ResolveTitles:
		return "resolve_titles"
	case RemoveEntry:
		return "remove_entry"
	case SearchTitles:
		return "search_titles"
	default:
		return ""
	}
}

func subFetchUpdate(phase Phase, name, tmdbID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   phase,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Fetching %s for %s...", name, tmdbID),
	}
}

func fetchProfileUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchProfile,
		Step:    1,
		Total:   2,
		Message: "Fetching profile...",
	}
}

func fetchListsUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchLists,
		Step:    2,
		Total:   2,
		Message: "Fetching collections...",
	}
}

func resolveTitleUpdate(step, total int, tmdbID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveTitles,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Resolving %s...", step, total, tmdbID),
	}
}

func searchPageUpdate(query string, page int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchTitles,
		Step:    page,
		Total:   page,
		Message: fmt.Sprintf("Searching for %q (page %d)...", query, page),
	}
}
