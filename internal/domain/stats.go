package domain

import "time"

// SeriesPoint is one entry of an append-only timestamped counter series.
type SeriesPoint struct {
	Count     int
	Timestamp time.Time
}

// UserStats are the per-user append-only series. None of these ever
// decreases: leaving a channel or having a message removed appends nothing.
type UserStats struct {
	ChannelsJoined  []SeriesPoint
	DmsJoined       []SeriesPoint
	MessagesSent    []SeriesPoint
	InvolvementRate float64
}

// WorkspaceStats are the workspace-wide series. MessagesExist decreases
// when a message is removed, unlike the per-user MessagesSent series.
type WorkspaceStats struct {
	ChannelsExist   []SeriesPoint
	DmsExist        []SeriesPoint
	MessagesExist   []SeriesPoint
	UtilizationRate float64
}
