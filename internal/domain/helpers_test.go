package domain_test

import "time"

const (
	testTimeout = 5 * time.Second
	testTick    = 5 * time.Millisecond
)
