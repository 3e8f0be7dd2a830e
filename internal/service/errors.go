package service

import "errors"

var (
	// Resolution errors
	ErrNoTenantFound      = errors.New("no tenant found for hostname")
	ErrStorageUnavailable = errors.New("domain registry storage unavailable")

	// Content errors
	ErrContentQueryFailed = errors.New("content query failed")
)
