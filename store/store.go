// Package store persists the single user-profile record. The profile
// is the only durable resource in the system: one fixed-key row,
// whole-record overwrites, read once at session start.
package store

import "bistro-chat-api/models"

// ProfileKey is the fixed key the one profile record lives under
const ProfileKey = "userProfile"

// ProfileStore loads and saves the user profile. Load returns
// (nil, nil) when no profile has been saved yet; a malformed stored
// record is treated the same way rather than surfacing an error.
type ProfileStore interface {
	Load() (*models.UserProfile, error)
	Save(profile *models.UserProfile) error
}
