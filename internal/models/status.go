package models

type Status string

const (
	StatusNeedsReview       Status = "Generated - Needs Review"
	StatusNeedsImage        Status = "Draft - Needs Image Selection"
	StatusNeedsRegeneration Status = "Needs Re-Generation"
	StatusReady             Status = "Ready to Post"
	StatusPublished         Status = "Published"
	StatusArchived          Status = "Archived"
)

var Statuses = []Status{
	StatusNeedsReview,
	StatusNeedsImage,
	StatusNeedsRegeneration,
	StatusReady,
	StatusPublished,
	StatusArchived,
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// The store does not enforce this table. Callers log moves outside of it.
var transitions = map[Status][]Status{
	StatusNeedsReview:       {StatusNeedsImage, StatusNeedsRegeneration, StatusReady, StatusArchived},
	StatusNeedsImage:        {StatusNeedsReview, StatusNeedsRegeneration, StatusReady, StatusArchived},
	StatusNeedsRegeneration: {StatusNeedsReview, StatusNeedsImage, StatusReady, StatusArchived},
	StatusReady:             {StatusPublished, StatusNeedsReview, StatusNeedsImage, StatusNeedsRegeneration, StatusArchived},
	StatusArchived:          {StatusNeedsReview},
	StatusPublished:         {},
}

// CanTransition reports whether moving from one status to another follows the
// workflow. Writing the current status again is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return to.Valid()
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsActive reports whether a post belongs in the review queue rather than history.
func IsActive(s Status) bool {
	return s != StatusPublished && s != StatusArchived
}

// InactiveStatuses are the statuses shown in the dashboard history.
var InactiveStatuses = []Status{StatusPublished, StatusArchived}
