package cache

import "strings"

const (
	GlobalKeyPrefix = "quizmaster"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// AdminStatsVersionKey holds a counter bumped on every quiz submission.
func AdminStatsVersionKey() string {
	return GenerateCacheKey("stats", "admin", "version")
}

// AdminStatsKey is where the admin statistics computed at a given
// AdminStatsVersionKey value are cached.
func AdminStatsKey(version string) string {
	return GenerateCacheKey("stats", "admin", "summary", version)
}

// RevokedTokenKey marks a session token id as logged out.
func RevokedTokenKey(tokenID string) string {
	return GenerateCacheKey("auth", "revoked", tokenID)
}
