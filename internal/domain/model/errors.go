package model

import "errors"

// Sentinel kinds for snapshot lookups and validation. Absent references are
// always surfaced to callers; they are never silently defaulted.
var (
	ErrEmployeeNotFound   = errors.New("employee not found in snapshot")
	ErrPositionNotFound   = errors.New("position not found in snapshot")
	ErrCareerPathNotFound = errors.New("career path not found in snapshot")
	ErrDepartmentNotFound = errors.New("department not found in snapshot")
	ErrNoCurrentPosition  = errors.New("employee has no current position")
	ErrInvalidSnapshot    = errors.New("invalid snapshot")
)
