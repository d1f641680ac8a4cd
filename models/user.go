package models

import "time"

// User is the local account record of a person who logged in through the
// identity provider. It is created on the first successful login for a
// given AuthSubject and never deleted by the backend.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// AuthSubject is the "sub" claim issued by the identity provider.
	// Unique across users.
	AuthSubject string `json:"-"`

	// APIKey is the user's key for the external analytics source.
	// Nil until the user submits one with their first skillblock.
	// Never serialized.
	APIKey *string `json:"-"`

	// KeyPresent reports whether APIKey is set.
	KeyPresent bool `json:"key_present"`

	// BlockCount is the number of skillblocks the user owns.
	BlockCount int `json:"block_count"`

	// CreatedAt is the moment the account was created.
	CreatedAt time.Time `json:"created_at"`

	// LastLoginAt is updated after every successful login.
	LastLoginAt time.Time `json:"last_login_at"`

	// BlocksLastSyncedAt is the calendar day on which the user's skillblocks
	// were last synchronized with the analytics source. It drives the range
	// fetched on the next sync and only moves forward after a sync in which
	// every skillblock succeeded.
	BlocksLastSyncedAt time.Time `json:"blocks_last_synced_at"`
}
