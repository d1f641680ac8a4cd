package models

// Skillblock is a user-defined trackable activity backed by a category of
// the external analytics source.
type Skillblock struct {
	BlockID int64 `json:"block_id"`
	UserID  int64 `json:"user_id"`

	// Category is the analytics source category or overview label the block
	// is restricted to, e.g. "software development".
	Category string `json:"category"`

	// IsOfflineCategory marks blocks recorded outside the analytics tool;
	// they are queried with the category restriction instead of overview.
	IsOfflineCategory bool `json:"is_offline_category"`

	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewSkillblockForm is the form submitted to create a skillblock.
// APIKey is optional once the user already has a key on file.
type NewSkillblockForm struct {
	APIKey          *string `validate:"omitempty,notblank,max=256"`
	Category        string  `validate:"required,notblank,max=128"`
	OfflineCategory bool
	SkillName       string `validate:"required,notblank,max=128"`
	Description     string `validate:"max=1024"`
}
