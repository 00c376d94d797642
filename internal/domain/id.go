package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var leadIDRegex = regexp.MustCompile(`^lead_[0-9]{10}_[0-9a-f]{8}$`)

// NewLeadID returns a collision-resistant lead id: unix timestamp plus a
// random hex suffix. Unique with overwhelming probability within a run and
// across repeated runs, so concurrent generations never contend on one row.
func NewLeadID() (string, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate lead id: %w", err)
	}
	return fmt.Sprintf("lead_%010d_%s", time.Now().Unix(), hex.EncodeToString(b[:])), nil
}

// ValidLeadID reports whether id matches the generated format.
func ValidLeadID(id string) bool {
	return leadIDRegex.MatchString(id)
}

// LeadIDTime extracts the creation timestamp embedded in a lead id.
func LeadIDTime(id string) (time.Time, error) {
	if !ValidLeadID(id) {
		return time.Time{}, fmt.Errorf("invalid lead id: %s", id)
	}
	ts, err := strconv.ParseInt(id[5:15], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse lead id timestamp: %w", err)
	}
	return time.Unix(ts, 0), nil
}
