package utils

import "time"

// AuthCachePrefix is the prefix used for cached portal token hashes.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute
