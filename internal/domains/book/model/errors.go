package model

import "errors"

var (
	// ErrPublishFailed means the submission was valid but could not be
	// handed to the queue. Never swallowed - the caller must see it.
	ErrPublishFailed = errors.New("could not queue submission")
)
