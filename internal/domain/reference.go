package domain

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewBookingReference builds a human-readable reference: GF-YYYYMMDD-NNNNN.
// The date component plus a 5-digit random suffix makes collisions unlikely in
// practice but not impossible; the wizard assigns it once per attempt.
func NewBookingReference(now time.Time) string {
	return fmt.Sprintf("GF-%s-%d", now.Format("20060102"), 10000+rand.IntN(90000))
}
