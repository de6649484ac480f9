package service

import (
	"alcyxob/health-tracker/internal/domain"
	"alcyxob/health-tracker/internal/repository"
	"context"
	"errors"
	"sort"
)

// In-memory fakes for the collaborator interfaces. Each can be forced to
// fail to exercise the fail-closed paths.

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
	failGet  bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*domain.Session{}}
}

func (f *fakeSessionRepo) Get(_ context.Context, userID string) (*domain.Session, error) {
	if f.failGet {
		return nil, errors.New("session store unavailable")
	}
	s, ok := f.sessions[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) Put(_ context.Context, session *domain.Session) error {
	f.sessions[session.UserID] = session
	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, userID string) error {
	delete(f.sessions, userID)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*domain.UserProfile
	failGet  bool
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*domain.UserProfile{}}
}

func (f *fakeProfileRepo) Get(_ context.Context, userID string) (*domain.UserProfile, error) {
	if f.failGet {
		return nil, errors.New("profile store unavailable")
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) Put(_ context.Context, profile *domain.UserProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

type fakeRecordRepo struct {
	// keyed by userID then date
	records map[string]map[string]domain.DailyRecord
	failGet bool
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: map[string]map[string]domain.DailyRecord{}}
}

func (f *fakeRecordRepo) Get(_ context.Context, userID, date string) (*domain.DailyRecord, error) {
	if f.failGet {
		return nil, errors.New("record store unavailable")
	}
	rec, ok := f.records[userID][date]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rec, nil
}

func (f *fakeRecordRepo) Put(_ context.Context, userID string, record *domain.DailyRecord) error {
	if f.records[userID] == nil {
		f.records[userID] = map[string]domain.DailyRecord{}
	}
	// Merge semantics: preserve a stored protein the write omits.
	if existing, ok := f.records[userID][record.Date]; ok && record.Protein == nil {
		record.Protein = existing.Protein
	}
	f.records[userID][record.Date] = *record
	return nil
}

func (f *fakeRecordRepo) ListRecent(_ context.Context, userID string, limit int) ([]domain.DailyRecord, error) {
	byDate := f.records[userID]
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if limit < len(dates) {
		dates = dates[:limit]
	}
	out := make([]domain.DailyRecord, 0, len(dates))
	for _, d := range dates {
		out = append(out, byDate[d])
	}
	return out, nil
}

// fakeSender scripts the identity provider.
type fakeSender struct {
	verificationID string
	sendErr        error
	confirmOK      bool
	confirmErr     error
}

func (f *fakeSender) SendVerification(_ context.Context, _ string) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return f.verificationID, nil
}

func (f *fakeSender) ConfirmVerification(_ context.Context, _, _, _ string) (bool, error) {
	if f.confirmErr != nil {
		return false, f.confirmErr
	}
	return f.confirmOK, nil
}
