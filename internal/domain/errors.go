package domain

import "github.com/cockroachdb/errors"

var (
	ErrValidation       = errors.New("validation failed")
	ErrCouponRejected   = errors.New("coupon rejected")
	ErrSecurityCheck    = errors.New("security check incomplete")
	ErrSubmissionFailed = errors.New("submission failed")
	ErrCompleted        = errors.New("booking already completed")
	ErrNotFound         = errors.New("not found")
)
