// Package models defines the core data structures for users, tasks,
// searches and chat messages.
package models

import "time"

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID int64 `json:"id" db:"id"`
	// Email is the unique login address of the user.
	Email string `json:"email" db:"email"`
	// Name is the display name of the user.
	Name string `json:"name" db:"name"`
	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized in responses.
	PasswordHash string `json:"-" db:"password_hash"`
	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Task is a user-owned todo item, optionally linked to a place.
// Latitude and Longitude are either both set or both nil; they are resolved
// from Location once at creation time and never recomputed.
type Task struct {
	// ID is the unique identifier for the task.
	ID string `json:"id" db:"id"`
	// UserID is the identifier of the owning user.
	UserID int64 `json:"user_id" db:"user_id"`
	// Title is the short summary of the task.
	Title string `json:"title" db:"title"`
	// Description holds optional free-text details.
	Description string `json:"description" db:"description"`
	// Completed reports whether the task is done.
	Completed bool `json:"completed" db:"completed"`
	// DueTime is an unvalidated free-text due time, e.g. "tomorrow 9am".
	DueTime string `json:"due_time" db:"due_time"`
	// Location is the free-text place name the task is linked to.
	Location string `json:"location" db:"location"`
	// Latitude of the geocoded location, if resolved.
	Latitude *float64 `json:"latitude" db:"latitude"`
	// Longitude of the geocoded location, if resolved.
	Longitude *float64 `json:"longitude" db:"longitude"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Search is a write-once record of one search request and its result.
type Search struct {
	// ID is the unique identifier for the search.
	ID string `json:"id" db:"id"`
	// UserID is the identifier of the owning user.
	UserID int64 `json:"user_id" db:"user_id"`
	// Query is the search query text (or transcript for voice).
	Query string `json:"query" db:"query"`
	// SearchType is the modality tag of the search.
	SearchType string `json:"search_type" db:"search_type"`
	// Result is the completion text returned by the AI service.
	Result string `json:"result" db:"result"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SearchType values tag the modality of a stored search.
const (
	// SearchText is a plain text query.
	SearchText = "text"
	// SearchImage is a base64-image query.
	SearchImage = "image"
	// SearchVoice is a transcribed audio query.
	SearchVoice = "voice"
)

// ChatMessage is one user message and the assistant response to it.
type ChatMessage struct {
	// ID is the unique identifier for the message.
	ID string `json:"id" db:"id"`
	// UserID is the identifier of the owning user.
	UserID int64 `json:"user_id" db:"user_id"`
	// Message is the user's message text.
	Message string `json:"message" db:"message"`
	// Response is the assistant's reply.
	Response string `json:"response" db:"response"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Stats holds the aggregate counters shown on a user's profile.
// Discoveries duplicates Searches; the mobile client renders both.
type Stats struct {
	Searches       int `json:"searches"`
	TasksCompleted int `json:"tasks_completed"`
	TotalTasks     int `json:"total_tasks"`
	Discoveries    int `json:"discoveries"`
}

// Coordinates is a resolved latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is one nearby-search result returned by the places service.
type Place struct {
	PlaceID    string       `json:"place_id"`
	Name       string       `json:"name"`
	Rating     float64      `json:"rating,omitempty"`
	PriceLevel int          `json:"price_level,omitempty"`
	Types      []string     `json:"types,omitempty"`
	Location   *Coordinates `json:"location,omitempty"`
	Vicinity   string       `json:"vicinity,omitempty"`
	OpenNow    *bool        `json:"open_now,omitempty"`
}
