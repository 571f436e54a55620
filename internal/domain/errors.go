package domain

import "errors"

var (
	ErrNotFound               = errors.New("not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrMissingRequiredAnswers = errors.New("missing required answers")
	ErrInvalidAnswers         = errors.New("invalid answers")
	ErrDuplicateBusinessName  = errors.New("a page for this business name already exists")
	ErrGenerationFailed       = errors.New("generation failed")
	ErrUpstreamGeneration     = errors.New("upstream generation failure")
	ErrInvalidLogo            = errors.New("logo must be an image")
	ErrLogoTooLarge           = errors.New("logo exceeds size limit")
)
