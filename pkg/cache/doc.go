// Package cache provides a generic, thread-safe LRU (least recently
// used) cache with hit ratio statistics.
//
// The cache evicts the entry that has not been touched the longest once
// it reaches its configured capacity, which keeps memory bounded when
// caching expensive computations such as prime factorizations or
// localized message lookups.
//
// Basic use:
//
//	c := cache.NewLRU[string, []byte](100)
//	c.Put("answer", data)
//	if data, ok := c.Get("answer"); ok {
//		// cache hit, "answer" is now the most recently used key
//	}
//
// Get marks the key as recently used and counts toward the hit ratio;
// Contains does neither, so monitoring code can probe the cache without
// distorting either the eviction order or the statistics. Entries that
// hold resources can be released through an eviction callback:
//
//	c.SetEvictCallback(func(key string, f *os.File) {
//		f.Close()
//	})
//
// All operations are safe for concurrent use.
package cache
