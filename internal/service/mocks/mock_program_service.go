package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"programboard/internal/model"
	"programboard/internal/service"
)

type MockProgramService struct {
	mock.Mock
}

func (m *MockProgramService) Upload(ctx context.Context, date, language string, file *service.UploadInput) (*service.UploadResult, error) {
	args := m.Called(ctx, date, language, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

func (m *MockProgramService) PublicPrograms(ctx context.Context, now time.Time) (map[string]map[string]model.ProgramSummary, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]map[string]model.ProgramSummary), args.Error(1)
}

func (m *MockProgramService) AdminList(ctx context.Context) ([]model.ProgramEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProgramEntry), args.Error(1)
}

func (m *MockProgramService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
