package domain

import (
	"errors"
	"time"
)

// Role identifies what kind of principal an account is.
type Role string

const (
	RoleClient       Role = "client"
	RolePhotographer Role = "photographer"
	RoleAdmin        Role = "admin"
)

// AccountStatus represents the approval state of an account. Only
// photographer accounts pass through pending/rejected; clients and admins
// are always active.
type AccountStatus string

const (
	StatusActive   AccountStatus = "active"
	StatusPending  AccountStatus = "pending"
	StatusRejected AccountStatus = "rejected"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrDuplicateAccount = errors.New("account already exists")
var ErrForbiddenRole = errors.New("role cannot be used for signup")
var ErrPendingApproval = errors.New("account pending admin approval")
var ErrAccountRejected = errors.New("registration request was rejected")
var ErrBadCredential = errors.New("invalid email or password")
var ErrUnauthenticated = errors.New("authentication required")
var ErrUnauthorized = errors.New("unauthorized access")

// SignupRole reports whether a role may be chosen at signup.
// Admin accounts are never created through signup.
func (r Role) SignupRole() bool {
	return r == RoleClient || r == RolePhotographer
}

// InitialStatus returns the status a freshly signed-up account starts in:
// photographers await admin approval, everyone else is immediately active.
func (r Role) InitialStatus() AccountStatus {
	if r == RolePhotographer {
		return StatusPending
	}
	return StatusActive
}

// Account is a registered principal. Email is the immutable primary key;
// Portfolio is append-only.
type Account struct {
	Email          string        `json:"email" bson:"email"`
	Name           string        `json:"name" bson:"name"`
	PasswordHash   string        `json:"-" bson:"pwd"`
	Role           Role          `json:"role" bson:"role"`
	Status         AccountStatus `json:"status" bson:"status"`
	Specialization string        `json:"specialization" bson:"specialization"`
	Location       string        `json:"location" bson:"location"`
	Pricing        string        `json:"pricing" bson:"pricing"`
	Portfolio      []string      `json:"portfolio" bson:"portfolio"`
	CreatedAt      time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" bson:"updated_at"`
}
