// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

// Company is a row of the companies table.
type Company struct {
	Handle       string  `db:"handle" json:"handle"`
	Name         string  `db:"name" json:"name"`
	Description  string  `db:"description" json:"description"`
	NumEmployees *int    `db:"num_employees" json:"numEmployees"`
	LogoURL      *string `db:"logo_url" json:"logoUrl"`
}

// CompanyJob is a job listed under its company.
type CompanyJob struct {
	ID     int      `db:"id" json:"id"`
	Title  string   `db:"title" json:"title"`
	Salary *int     `db:"salary" json:"salary"`
	Equity *float64 `db:"equity" json:"equity"`
}

// CompanyDetail is a company together with its jobs.
type CompanyDetail struct {
	Company
	Jobs []CompanyJob `json:"jobs"`
}

// CreateCompanyRequest is the body of POST /companies.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle" validate:"required,min=1,max=25,lowercase"`
	Name         string  `json:"name" validate:"required,min=1"`
	Description  string  `json:"description" validate:"required"`
	NumEmployees *int    `json:"numEmployees" validate:"omitempty,min=0,max=2147483647"`
	LogoURL      *string `json:"logoUrl" validate:"omitempty,url"`
}

// ToCompany converts the request into a row.
func (r CreateCompanyRequest) ToCompany() Company {
	return Company{
		Handle:       r.Handle,
		Name:         r.Name,
		Description:  r.Description,
		NumEmployees: r.NumEmployees,
		LogoURL:      r.LogoURL,
	}
}

// CompanyFilter holds the optional query parameters of GET /companies.
type CompanyFilter struct {
	NameLike     *string `schema:"nameLike"`
	MinEmployees *int    `schema:"minEmployees"`
	MaxEmployees *int    `schema:"maxEmployees"`
}
