package services

import (
	"context"
	"fmt"

	companyErrors "github.com/qolzam/jobly/companies/errors"
	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/companies/repository"
	"github.com/qolzam/jobly/internal/database/sqlclause"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/validation"
)

// updateSchema lists the fields PATCH /companies/:handle accepts.
var updateSchema = validation.UpdateSchema{
	"name":         {Kind: validation.KindString, Tag: "min=1"},
	"description":  {Kind: validation.KindString},
	"numEmployees": {Kind: validation.KindInt, Nullable: true, Tag: "min=0"},
	"logoUrl":      {Kind: validation.KindString, Nullable: true, Tag: "url"},
}

type companyService struct {
	repo repository.Repository
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.Repository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	company, err := s.repo.Create(ctx, req.ToCompany())
	if err != nil {
		return nil, err
	}
	log.InfoWithContext(ctx, "company %s created", company.Handle)
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	if filter.MinEmployees != nil && filter.MaxEmployees != nil && *filter.MinEmployees > *filter.MaxEmployees {
		return nil, fmt.Errorf("%w: minEmployees cannot be greater than maxEmployees", companyErrors.ErrInvalidFilter)
	}

	// Name matching is a substring search; the compiled clause binds the term as is.
	if filter.NameLike != nil && *filter.NameLike != "" {
		term := "%" + *filter.NameLike + "%"
		filter.NameLike = &term
	}

	return s.repo.FindAll(ctx, filter)
}

func (s *companyService) GetCompany(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	company, err := s.repo.FindByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	jobs, err := s.repo.FindJobs(ctx, handle)
	if err != nil {
		return nil, err
	}

	return &models.CompanyDetail{Company: *company, Jobs: jobs}, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, handle string, req sqlclause.UpdateRequest) (*models.Company, error) {
	if len(req) == 0 {
		return nil, sqlclause.ErrNoData
	}
	if err := updateSchema.Validate(req); err != nil {
		return nil, err
	}

	company, err := s.repo.Update(ctx, handle, req)
	if err != nil {
		return nil, err
	}
	log.InfoWithContext(ctx, "company %s updated: %v", handle, req.Fields())
	return company, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, handle string) error {
	if err := s.repo.Delete(ctx, handle); err != nil {
		return err
	}
	log.InfoWithContext(ctx, "company %s deleted", handle)
	return nil
}
