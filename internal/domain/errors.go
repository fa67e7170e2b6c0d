package domain

import "errors"

// Domain errors.
var (
	ErrConfiguration     = errors.New("invalid configuration")
	ErrOwnerUnknown      = errors.New("repository owner not set (use --owner, BUTLER_OWNER or an origin remote)")
	ErrConfigExists      = errors.New("config file already exists")
	ErrInvalidReference  = errors.New("invalid issue reference")
	ErrEmptyIssue        = errors.New("issue has no identifier")
	ErrEmptyResult       = errors.New("no issues to render")
	ErrMalformedDocument = errors.New("malformed document")
	ErrRender            = errors.New("render document")
)
