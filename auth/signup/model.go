package signup

import userModels "github.com/qolzam/jobly/users/models"

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=1,max=25"`
	Password  string `json:"password" validate:"required,min=5,max=72"`
	FirstName string `json:"firstName" validate:"required,min=1,max=30"`
	LastName  string `json:"lastName" validate:"required,min=1,max=30"`
	Email     string `json:"email" validate:"required,email,min=6,max=60"`
}

// ToUser builds a non-admin user row carrying hashedPassword.
func (r RegisterRequest) ToUser(hashedPassword string) userModels.User {
	return userModels.User{
		Username:  r.Username,
		Password:  hashedPassword,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}
