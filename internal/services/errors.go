package services

import "errors"

// Generation failures are distinguishable so callers can tell "model
// unreachable" from "model produced unusable output" from "output violated
// the schema". None of them trigger retries here; retry policy belongs to
// the caller.
var (
	ErrUpstreamUnavailable = errors.New("model endpoint unavailable")
	ErrEmptyResponse       = errors.New("model response was empty")
	ErrMalformedRoadmap    = errors.New("model output is not a valid roadmap")
	ErrValidationFailed    = errors.New("roadmap violation")

	ErrRoadmapCorrupted = errors.New("stored roadmap is corrupted")
	ErrRoadmapNotFound  = errors.New("roadmap not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrNotOwner         = errors.New("roadmap does not belong to user")
)
