package services

import (
	"context"

	companyRepository "github.com/qolzam/jobly/companies/repository"
	"github.com/qolzam/jobly/internal/database/sqlclause"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/validation"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/qolzam/jobly/jobs/repository"
)

// id and companyHandle are not updatable.
var updateSchema = validation.UpdateSchema{
	"title":  {Kind: validation.KindString, Tag: "min=1"},
	"salary": {Kind: validation.KindInt, Nullable: true, Tag: "min=0"},
	"equity": {Kind: validation.KindNumber, Nullable: true, Tag: "min=0,max=1"},
}

type jobService struct {
	repo        repository.Repository
	companyRepo companyRepository.Repository
}

// NewJobService creates a new job service. companyRepo resolves the company
// nested in job details.
func NewJobService(repo repository.Repository, companyRepo companyRepository.Repository) JobService {
	return &jobService{repo: repo, companyRepo: companyRepo}
}

func (s *jobService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	job, err := s.repo.Create(ctx, req.ToJob())
	if err != nil {
		return nil, err
	}
	log.InfoWithContext(ctx, "job %d created for %s", job.ID, job.CompanyHandle)
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, filter models.JobFilter) ([]models.JobListing, error) {
	if filter.Title != nil && *filter.Title != "" {
		term := "%" + *filter.Title + "%"
		filter.Title = &term
	}
	return s.repo.FindAll(ctx, filter)
}

func (s *jobService) GetJob(ctx context.Context, id int) (*models.JobDetail, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindByHandle(ctx, job.CompanyHandle)
	if err != nil {
		return nil, err
	}

	return &models.JobDetail{
		ID:      job.ID,
		Title:   job.Title,
		Salary:  job.Salary,
		Equity:  job.Equity,
		Company: company,
	}, nil
}

func (s *jobService) UpdateJob(ctx context.Context, id int, req sqlclause.UpdateRequest) (*models.Job, error) {
	if len(req) == 0 {
		return nil, sqlclause.ErrNoData
	}
	if err := updateSchema.Validate(req); err != nil {
		return nil, err
	}

	job, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	log.InfoWithContext(ctx, "job %d updated: %v", id, req.Fields())
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.InfoWithContext(ctx, "job %d deleted", id)
	return nil
}
