package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"talent-portal-backend/internal/domain"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User, skillIDs []int64, educations []domain.Education) error {
	args := m.Called(ctx, user, skillIDs, educations)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetWithRelations(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, user *domain.User, skillIDs []int64, educations []domain.Education, replaceSkills, replaceEducations bool) error {
	args := m.Called(ctx, user, skillIDs, educations, replaceSkills, replaceEducations)
	return args.Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepo) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepo) ListScheduled(ctx context.Context, filter domain.InterviewFilter) ([]domain.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepo) UpdateInterview(ctx context.Context, id int64, selected bool, date, timeOfDay *string) error {
	args := m.Called(ctx, id, selected, date, timeOfDay)
	return args.Error(0)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendWelcome(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockNotifier) SendLoginAlert(user *domain.User, at time.Time) error {
	args := m.Called(user, at)
	return args.Error(0)
}

func (m *MockNotifier) SendInterviewScheduled(notice domain.InterviewNotice) error {
	args := m.Called(notice)
	return args.Error(0)
}

func (m *MockNotifier) SendInterviewRescheduled(notice domain.InterviewNotice) error {
	args := m.Called(notice)
	return args.Error(0)
}

type MockAddressLookup struct {
	mock.Mock
}

func (m *MockAddressLookup) Lookup(ctx context.Context, cep string) (*domain.Address, error) {
	args := m.Called(ctx, cep)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}
