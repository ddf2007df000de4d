package service

import "github.com/crewchat-dev/crewchat/internal/domain"

type StatsService interface {
	UserStats(uid domain.UserId) (domain.UserStats, error)
	WorkspaceStats() domain.WorkspaceStats
}

// Stats exposes the append-only counter series. Rates are computed inside the
// storage query so the numerator and denominator come from one snapshot.
type Stats struct {
	storage StatsStorage
}

type StatsStorage interface {
	UserStats(uid domain.UserId) (domain.UserStats, error)
	WorkspaceStats() domain.WorkspaceStats
}

func NewStats(storage StatsStorage) *Stats {
	return &Stats{storage}
}

func (s *Stats) UserStats(uid domain.UserId) (domain.UserStats, error) {
	return s.storage.UserStats(uid)
}

func (s *Stats) WorkspaceStats() domain.WorkspaceStats {
	return s.storage.WorkspaceStats()
}
