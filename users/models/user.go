// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import "github.com/qolzam/jobly/internal/types"

// User is a row of the users table. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	Username  string `db:"username" json:"username"`
	Password  string `db:"password" json:"-"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Email     string `db:"email" json:"email"`
	IsAdmin   bool   `db:"is_admin" json:"isAdmin"`
}

// Context returns the identity carried in tokens for u.
func (u User) Context() types.UserContext {
	return types.UserContext{Username: u.Username, IsAdmin: u.IsAdmin}
}

// UserDetail is a user with the ids of the jobs applied to.
type UserDetail struct {
	User
	Applications []int `json:"applications"`
}

// CreateUserRequest is the body of POST /users. An omitted password is
// generated.
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,min=1,max=25"`
	Password  string `json:"password" validate:"omitempty,min=5,max=72"`
	FirstName string `json:"firstName" validate:"required,min=1,max=30"`
	LastName  string `json:"lastName" validate:"required,min=1,max=30"`
	Email     string `json:"email" validate:"required,email,min=6,max=60"`
	IsAdmin   bool   `json:"isAdmin"`
}

// ToUser converts the request into a row carrying hashedPassword.
func (r CreateUserRequest) ToUser(hashedPassword string) User {
	return User{
		Username:  r.Username,
		Password:  hashedPassword,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		IsAdmin:   r.IsAdmin,
	}
}

// CreatedUser is the answer to POST /users. Password is set only when it
// was generated, and is returned this one time.
type CreatedUser struct {
	User     User   `json:"user"`
	Token    string `json:"token"`
	Password string `json:"password,omitempty"`
}
