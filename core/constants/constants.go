package constants

import "time"

const (
	DefaultRequestTimeout = 10 * time.Second

	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 10
	DatabaseConnMaxLifetime = 30 // minutes

	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100

	ContextTokenData = "token_data"
	ContextRequestID = "request_id"

	AccessTokenTTL = 24 * time.Hour

	RedisKeyTokenBlacklist = "pickup:blacklist:"
	RedisKeyEventList      = "pickup:events:list"
	RedisKeyGroupList      = "pickup:groups:list"
	EventListCacheTTL      = 2 * time.Minute
	GroupListCacheTTL      = 2 * time.Minute

	TaskEventCreated = "event:created"
	QueueDefault     = "default"
)
