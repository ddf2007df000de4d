package memory

import (
	"time"

	internal_errors "github.com/crewchat-dev/crewchat/internal/errors"

	"github.com/crewchat-dev/crewchat/internal/domain"
)

// series is an append-only timestamped counter. Every state change appends a
// fresh point; history is never rewritten.
type series struct {
	points []domain.SeriesPoint
}

func newSeries(now time.Time) series {
	return series{points: []domain.SeriesPoint{{Count: 0, Timestamp: now}}}
}

func (s *series) bump(delta int, now time.Time) {
	s.points = append(s.points, domain.SeriesPoint{Count: s.latest() + delta, Timestamp: now})
}

func (s *series) latest() int {
	return s.points[len(s.points)-1].Count
}

func (s *series) copyPoints() []domain.SeriesPoint {
	return append([]domain.SeriesPoint(nil), s.points...)
}

type userSeries struct {
	channelsJoined series
	dmsJoined      series
	messagesSent   series
}

func newUserSeries(now time.Time) *userSeries {
	return &userSeries{
		channelsJoined: newSeries(now),
		dmsJoined:      newSeries(now),
		messagesSent:   newSeries(now),
	}
}

type workspaceSeries struct {
	channelsExist series
	dmsExist      series
	messagesExist series
}

func newWorkspaceSeries(now time.Time) workspaceSeries {
	return workspaceSeries{
		channelsExist: newSeries(now),
		dmsExist:      newSeries(now),
		messagesExist: newSeries(now),
	}
}

// bumpMessagesSent must be called with the write lock held. The sender may
// have been deactivated by the time a deferred job fires; the series is
// created lazily so the point is never dropped.
func (s *Storage) bumpMessagesSent(uid domain.UserId, now time.Time) {
	stats, ok := s.userStats[uid]
	if !ok {
		stats = newUserSeries(now)
		s.userStats[uid] = stats
	}
	stats.messagesSent.bump(1, now)
}

// UserStats returns the user's append-only series together with the
// involvement rate, computed under the same read lock so the numerator and
// denominator come from one snapshot.
func (s *Storage) UserStats(uid domain.UserId) (domain.UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats, ok := s.userStats[uid]
	if !ok {
		return domain.UserStats{}, &internal_errors.NotFoundError{Message: "User does not exist"}
	}

	numerator := stats.channelsJoined.latest() + stats.dmsJoined.latest() + stats.messagesSent.latest()
	denominator := s.workspace.channelsExist.latest() + s.workspace.dmsExist.latest() + s.workspace.messagesExist.latest()
	rate := 0.0
	if denominator > 0 {
		rate = float64(numerator) / float64(denominator)
		if rate > 1 {
			rate = 1
		}
	}

	return domain.UserStats{
		ChannelsJoined:  stats.channelsJoined.copyPoints(),
		DmsJoined:       stats.dmsJoined.copyPoints(),
		MessagesSent:    stats.messagesSent.copyPoints(),
		InvolvementRate: rate,
	}, nil
}

// WorkspaceStats returns the workspace series and the utilization rate:
// the fraction of registered users belonging to at least one channel or DM.
func (s *Storage) WorkspaceStats() domain.WorkspaceStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	joined := 0
	for uid := range s.users {
		if len(s.memberships[uid]) > 0 {
			joined++
		}
	}
	rate := 0.0
	if len(s.users) > 0 {
		rate = float64(joined) / float64(len(s.users))
	}

	return domain.WorkspaceStats{
		ChannelsExist:   s.workspace.channelsExist.copyPoints(),
		DmsExist:        s.workspace.dmsExist.copyPoints(),
		MessagesExist:   s.workspace.messagesExist.copyPoints(),
		UtilizationRate: rate,
	}
}
