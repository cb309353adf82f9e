package domain

import "errors"

var (
	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrCategoryNotFound is returned when a category is not found
	ErrCategoryNotFound = errors.New("category not found")

	// ErrRunInProgress is returned when a pipeline run is already holding the run lock
	ErrRunInProgress = errors.New("sync run already in progress")
)
