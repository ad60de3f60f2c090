package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// Role represents an account role as reported by the API
type Role string

// NoticeKind classifies a transient user notice
type NoticeKind string

const (
	AppName             = "frontdesk"
	DefaultKeyringUser  = "api-token"
	DefaultConfigPath   = "~/.config/frontdesk/frontdesk.yaml"
	DefaultStateDirPath = "~/.config/frontdesk"
	SessionFileName     = "session.json"
	Version             = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// APIPrefix is prepended to every endpoint path on the remote API
	APIPrefix = "/ede-api/v1"

	// DefaultPageSize is the page size used by paginated lists unless configured per list
	DefaultPageSize = 9

	// NoticeDuration is how long a notice stays visible before auto-dismissal
	NoticeDuration = 6 * time.Second

	// DefaultStatsWindowDays is the trailing window shown by the statistics view
	DefaultStatsWindowDays = 30

	// DefaultTopCompaniesLimit bounds the top-companies ranking
	DefaultTopCompaniesLimit = 5

	// Account roles
	RoleStaff Role = "STAFF"
	RoleAdmin Role = "ADMIN"

	// Notice kinds
	NoticeSuccess NoticeKind = "SUCCESS"
	NoticeError   NoticeKind = "ERROR"
	NoticeInfo    NoticeKind = "INFO"
)

// Session States
const (
	StateLogin SessionState = iota
	StateRooms
	StateReservations
	StateStatistics
	StateAccounts
	StateRoomModal
	StateReservationModal
	StateCreateRoom
	StateCreateReservation
	StateCreateAccount
	StateConfirmDeleteRoom
	StateConfirmDeleteReservation
	StateConfirmDeleteAccount
)
