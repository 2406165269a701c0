package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrUserNotFound = goerr.New("user not found")
)

// Error tags for dispatch failure kinds
var (
	ErrTagInvalidConfig    = goerr.NewTag("invalid_config")
	ErrTagTransport        = goerr.NewTag("transport_failure")
	ErrTagUnexpectedStatus = goerr.NewTag("unexpected_status")
	ErrTagRejected         = goerr.NewTag("rejected")
)
