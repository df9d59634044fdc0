package config

import "errors"

var (
	ErrMissingBranch = errors.New("branch is required")
)
