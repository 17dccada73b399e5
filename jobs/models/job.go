// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import companyModels "github.com/qolzam/jobly/companies/models"

// Job is a row of the jobs table.
type Job struct {
	ID            int      `db:"id" json:"id"`
	Title         string   `db:"title" json:"title"`
	Salary        *int     `db:"salary" json:"salary"`
	Equity        *float64 `db:"equity" json:"equity"`
	CompanyHandle string   `db:"company_handle" json:"companyHandle"`
}

// JobListing is a job as returned by GET /jobs.
type JobListing struct {
	Job
	CompanyName *string `db:"company_name" json:"companyName"`
}

// JobDetail is a job with its company nested.
type JobDetail struct {
	ID      int                    `json:"id"`
	Title   string                 `json:"title"`
	Salary  *int                   `json:"salary"`
	Equity  *float64               `json:"equity"`
	Company *companyModels.Company `json:"company"`
}

// CreateJobRequest is the body of POST /jobs.
type CreateJobRequest struct {
	Title         string   `json:"title" validate:"required,min=1"`
	Salary        *int     `json:"salary" validate:"omitempty,min=0,max=2147483647"`
	Equity        *float64 `json:"equity" validate:"omitempty,min=0,max=1"`
	CompanyHandle string   `json:"companyHandle" validate:"required,max=25"`
}

// ToJob converts the request into a row without an id.
func (r CreateJobRequest) ToJob() Job {
	return Job{
		Title:         r.Title,
		Salary:        r.Salary,
		Equity:        r.Equity,
		CompanyHandle: r.CompanyHandle,
	}
}

// JobFilter holds the optional query parameters of GET /jobs.
type JobFilter struct {
	Title     *string `schema:"title"`
	MinSalary *int    `schema:"minSalary"`
	HasEquity *bool   `schema:"hasEquity"`
}
