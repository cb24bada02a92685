package config

// CacheKeys builds the Redis keys used by the read-view cache.
type CacheKeys struct{}

// NewCacheKeys creates a CacheKeys helper.
func NewCacheKeys() *CacheKeys {
	return &CacheKeys{}
}

// GroupList returns the cache key for the denormalized group listing.
func (k *CacheKeys) GroupList() string {
	return "view:groups"
}

// StudentList returns the cache key for the denormalized student listing.
func (k *CacheKeys) StudentList() string {
	return "view:students"
}
