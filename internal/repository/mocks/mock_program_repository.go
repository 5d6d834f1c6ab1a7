package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"programboard/internal/model"
)

type MockProgramRepository struct {
	mock.Mock
}

func (m *MockProgramRepository) Find(ctx context.Context, date, language string) (*model.ProgramEntry, error) {
	args := m.Called(ctx, date, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProgramEntry), args.Error(1)
}

func (m *MockProgramRepository) Upsert(ctx context.Context, date, language, filePath, fileType string) (bool, error) {
	args := m.Called(ctx, date, language, filePath, fileType)
	return args.Bool(0), args.Error(1)
}

func (m *MockProgramRepository) FindByID(ctx context.Context, id int64) (*model.ProgramEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProgramEntry), args.Error(1)
}

func (m *MockProgramRepository) List(ctx context.Context) ([]model.ProgramEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProgramEntry), args.Error(1)
}

func (m *MockProgramRepository) ListForDates(ctx context.Context, dates []string) ([]model.ProgramEntry, error) {
	args := m.Called(ctx, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProgramEntry), args.Error(1)
}

func (m *MockProgramRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
