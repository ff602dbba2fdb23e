// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

/*
Package account handles user profile management, preferences, and security settings.

It provides functionalities for users to view and update their private identity data,
configure how their shelf is browsed, and manage their active device sessions.

# Architecture

  - Entities: Preferences, SessionInfo (DTO).
  - Domain: This package depends on the auth package for the User entity.
  - Security: Provides session transparency and revocation mechanisms.
*/
package account

import (
	"context"
	"time"

	"github.com/meeplebay/meeplebay/internal/users/auth"
)

// # Domain Entities

// Preferences represents the customizable shelf and UI settings for a user.
type Preferences struct {
	UserID           string    `json:"user_id"`
	Theme            string    `json:"theme"`             // 'system', 'light', 'dark'
	DefaultSort      string    `json:"default_sort"`      // 'name', 'year', 'weight', 'latest'
	PreferredPlayers int       `json:"preferred_players"` // Default player count filter: 1-99, 0 disables
	HideExpansions   bool      `json:"hide_expansions"`   // Collapse expansions into their base game
	HideCategories   []string  `json:"hide_categories"`   // Category slugs filtered out of browsing
	CompactGrid      bool      `json:"compact_grid"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FavoriteGame is a catalogue entry the user pinned to their shelf.
// Name and Slug are denormalized from the catalogue for display.
type FavoriteGame struct {
	GameID  string    `json:"game_id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	AddedAt time.Time `json:"added_at"`
}

// SessionInfo provides a safety-mapped view of an active user session.
// It omits sensitive token hashes for transport.
type SessionInfo struct {
	ID         string    `json:"id"`
	DeviceName string    `json:"device_name"` // e.g. "Chrome on Windows"
	IPAddress  string    `json:"ip_address"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	IsCurrent  bool      `json:"is_current"` // True if this session belongs to the current request
}

// # Repository Contracts

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		Update modifies the mutable profile fields of an existing user.

		Parameters:
		  - context: context.Context
		  - user: *User (Hydrated entity with changes)

		Returns:
		  - error: Storage or constraint failures
	*/
	Update(context context.Context, user *auth.User) error

	/*
		SoftDelete flags an account as logically deleted.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Execution failures
	*/
	SoftDelete(context context.Context, id string) error
}

// PreferencesRepository defines the persistence contract for shelf settings.
type PreferencesRepository interface {
	/*
		FindByUserID retrieves shelf preferences for a specific user.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - *Preferences: Hydrated settings
		  - error: apperr.NotFound if not present
	*/
	FindByUserID(context context.Context, userID string) (*Preferences, error)

	/*
		Upsert saves or updates preferences for a user using an idempotent strategy.

		Parameters:
		  - context: context.Context
		  - prefs: *Preferences

		Returns:
		  - error: Storage failure errors
	*/
	Upsert(context context.Context, prefs *Preferences) error
}

// FavoriteRepository defines the persistence contract for pinned games.
type FavoriteRepository interface {
	/*
		ListByUserID retrieves the user's pinned games, newest first.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []FavoriteGame: Pinned catalogue entries
		  - error: Retrieval errors
	*/
	ListByUserID(context context.Context, userID string) ([]FavoriteGame, error)

	/*
		Add pins a game to the user's shelf. Idempotent for repeated pins.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - gameID: string

		Returns:
		  - error: Storage or referential integrity failures
	*/
	Add(context context.Context, userID, gameID string) error

	/*
		Remove unpins a game from the user's shelf.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - gameID: string

		Returns:
		  - error: apperr.NotFound if the game was not pinned
	*/
	Remove(context context.Context, userID, gameID string) error
}

// SessionRepository defines the visibility and revocation contract for user sessions.
type SessionRepository interface {
	/*
		FindActiveByUserID lists all valid, non-expired sessions for a user.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []SessionInfo: List of active devices
		  - error: Retrieval errors
	*/
	FindActiveByUserID(context context.Context, userID string) ([]SessionInfo, error)

	/*
		Revoke marks a specific session as revoked.

		Parameters:
		  - context: context.Context
		  - userID: string (Security constraint: owner validation)
		  - sessionID: string

		Returns:
		  - error: Revocation failures
	*/
	Revoke(context context.Context, userID, sessionID string) error

	/*
		RevokeOthers revokes all active sessions except for a target session.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - currentSessionID: string (The whitelist target)

		Returns:
		  - error: Revocation failures
	*/
	RevokeOthers(context context.Context, userID, currentSessionID string) error

	/*
		RevokeAll terminates every session for a user.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - error: Revocation failures
	*/
	RevokeAll(context context.Context, userID string) error
}
