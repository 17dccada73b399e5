package services

import (
	"context"

	"github.com/qolzam/jobly/internal/database/sqlclause"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/qolzam/jobly/jobs/repository"
	"github.com/stretchr/testify/mock"
)

// MockJobRepository is a mock implementation of repository.Repository for testing
type MockJobRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockJobRepository)(nil)

func (m *MockJobRepository) Create(ctx context.Context, job models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) FindAll(ctx context.Context, filter models.JobFilter) ([]models.JobListing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobListing), args.Error(1)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id int) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, id int, req sqlclause.UpdateRequest) (*models.Job, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
