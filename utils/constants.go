// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// ScheduleCachePrefix is the prefix for cached month-option documents.
const ScheduleCachePrefix = "schedule:"

// ScheduleCacheTTL keeps computed booking options fresh enough for the UI
// while absorbing repeated month navigation.
const ScheduleCacheTTL = 60 * time.Second
