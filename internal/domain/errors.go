package domain

import "errors"

var (
	ErrDashboardNotFound = errors.New("dashboard not found")
	ErrDashboardExists   = errors.New("dashboard already exists")
	ErrUnauthorized      = errors.New("unauthorized")
)
