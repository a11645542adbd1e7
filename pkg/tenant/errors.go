package tenant

import "errors"

// Common errors for company (tenant) resolution
var (
	// ErrCompanyNotSpecified occurs when no company id is supplied on the request
	ErrCompanyNotSpecified = errors.New("company id not specified")

	// ErrCompanyNotFound occurs when the company is not registered
	ErrCompanyNotFound = errors.New("company not found")

	// ErrCompanyNotActive occurs when the company exists but is deactivated
	ErrCompanyNotActive = errors.New("company is not active")
)
