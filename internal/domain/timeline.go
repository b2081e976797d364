package domain

// TimelineEvent is one phase in a feature's geological history.
// Years counts years before present: 0 is today and values are never
// negative. Resolved timelines run oldest first.
type TimelineEvent struct {
	Phase       string
	Years       float64
	Description string
	// Source labels the evidence tier that produced the event, including any
	// confidence qualifier.
	Source string
	// URL points at the knowledge-base page backing the event, when one does.
	URL string
}
