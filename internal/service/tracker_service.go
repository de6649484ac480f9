package service

import (
	"alcyxob/health-tracker/internal/domain"
	"alcyxob/health-tracker/internal/repository"
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

// historyLimit caps the history read; the trend window is cut from this.
const historyLimit = 30

// Dashboard bundles everything the main screen renders in one read:
// the profile, today's record, and the derived indicators.
type Dashboard struct {
	Profile     *domain.UserProfile    `json:"profile"`
	Today       domain.DailyRecord     `json:"today"`
	BMI         float64                `json:"bmi"`
	BMICategory domain.BMICategoryInfo `json:"bmiCategory"`
	WaterGoalMl int                    `json:"waterGoalMl"`
}

// Analytics carries the fixed-window chart series. A day with no record
// is simply absent from the series: no zero-filling.
type Analytics struct {
	WindowDays int                 `json:"windowDays"`
	Water      []domain.TrendPoint `json:"water"`
	Steps      []domain.TrendPoint `json:"steps"`
}

// --- Service Interface ---

// TrackerService exposes the daily-metric and profile operations.
type TrackerService interface {
	// TodayRecord returns today's record, created lazily as all-zero when
	// none is stored yet.
	TodayRecord(ctx context.Context, userID string) (domain.DailyRecord, error)

	// AdjustMetric applies a clamped delta to one field of today's record
	// and persists the result with a merge-style write.
	AdjustMetric(ctx context.Context, userID string, field domain.Metric, delta float64) (domain.DailyRecord, error)

	// History returns up to 30 records, newest first.
	History(ctx context.Context, userID string) ([]domain.DailyRecord, error)

	// TrendAnalytics returns the 7-day water and steps series,
	// oldest first for chronological rendering.
	TrendAnalytics(ctx context.Context, userID string) (Analytics, error)

	// GetProfile returns the stored profile or repository.ErrNotFound.
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)

	// SaveProfile validates and stores a full profile submission, then
	// forces a fresh gate derivation.
	SaveProfile(ctx context.Context, userID string, profile *domain.UserProfile) (GateState, error)

	// GetDashboard assembles profile, today's record, and the derived
	// indicators.
	GetDashboard(ctx context.Context, userID string) (*Dashboard, error)
}

// --- Service Implementation ---

type trackerService struct {
	profiles repository.ProfileRepository
	records  repository.DailyRecordRepository
	gate     *SessionGate
}

// NewTrackerService creates a new instance of trackerService.
func NewTrackerService(profiles repository.ProfileRepository, records repository.DailyRecordRepository, gate *SessionGate) TrackerService {
	return &trackerService{
		profiles: profiles,
		records:  records,
		gate:     gate,
	}
}

// TodayRecord reads today's record, degrading to the all-zero default on
// both "not found" and store failure: the UI renders defaults rather
// than crashing.
func (s *trackerService) TodayRecord(ctx context.Context, userID string) (domain.DailyRecord, error) {
	if userID == "" {
		return domain.DefaultRecord(domain.Today()), ErrNotAuthenticated
	}

	today := domain.Today()
	rec, err := s.records.Get(ctx, userID, today)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("WARN: reading today's record failed, serving defaults: %v", err)
		}
		return domain.DefaultRecord(today), nil
	}
	return *rec, nil
}

// AdjustMetric is the single mutation path for daily metrics:
// load (or default) today's record, apply the clamped delta, write back.
// Writes for one user apply in the order issued; each delta is an
// independent merge write with no cross-field atomicity.
func (s *trackerService) AdjustMetric(ctx context.Context, userID string, field domain.Metric, delta float64) (domain.DailyRecord, error) {
	rec, err := s.TodayRecord(ctx, userID)
	if err != nil {
		return rec, err
	}

	rec, err = domain.ApplyDelta(rec, field, delta)
	if err != nil {
		return rec, err
	}

	if err := s.records.Put(ctx, userID, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// History returns up to historyLimit records, descending by date. Store
// failures degrade to an empty history.
func (s *trackerService) History(ctx context.Context, userID string) ([]domain.DailyRecord, error) {
	if userID == "" {
		return []domain.DailyRecord{}, ErrNotAuthenticated
	}

	records, err := s.records.ListRecent(ctx, userID, historyLimit)
	if err != nil {
		log.Printf("WARN: reading history failed, serving empty: %v", err)
		return []domain.DailyRecord{}, nil
	}
	return records, nil
}

// TrendAnalytics cuts the 7-day window from the history and extracts the
// parallel water and steps series.
func (s *trackerService) TrendAnalytics(ctx context.Context, userID string) (Analytics, error) {
	history, err := s.History(ctx, userID)
	if err != nil {
		return Analytics{WindowDays: domain.TrendWindowDays}, err
	}

	window := domain.RecentWindow(history, domain.TrendWindowDays)
	return Analytics{
		WindowDays: domain.TrendWindowDays,
		Water:      domain.Series(window, domain.MetricWater),
		Steps:      domain.Series(window, domain.MetricSteps),
	}, nil
}

// GetProfile retrieves the stored profile.
func (s *trackerService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	return s.profiles.Get(ctx, userID)
}

// SaveProfile validates and persists a full profile submission. The gate
// state is re-derived afterwards so the caller learns it may now enter
// the main area.
func (s *trackerService) SaveProfile(ctx context.Context, userID string, profile *domain.UserProfile) (GateState, error) {
	if userID == "" {
		return GateLoggedOut, ErrNotAuthenticated
	}

	profile.UserID = userID
	if err := domain.ValidateProfile(profile); err != nil {
		return s.gate.Resolve(ctx, userID), err
	}

	if err := s.profiles.Put(ctx, profile); err != nil {
		return s.gate.Resolve(ctx, userID), err
	}

	return s.gate.Resolve(ctx, userID), nil
}

// GetDashboard assembles the main-screen payload. The calculators never
// fail: an incomplete profile yields BMI 0 rather than an error.
func (s *trackerService) GetDashboard(ctx context.Context, userID string) (*Dashboard, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	today, err := s.TodayRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	bmi := domain.CalculateBMI(profile.HeightCm, profile.WeightKg)
	return &Dashboard{
		Profile:     profile,
		Today:       today,
		BMI:         bmi,
		BMICategory: domain.BMICategory(bmi),
		WaterGoalMl: domain.CalculateWaterGoal(profile.WeightKg),
	}, nil
}
