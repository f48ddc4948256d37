package content

import "strings"

// PurgePrefix maps an API resource onto the cache keys it covers, so
// "/amenities" also drops "/amenities/featured/3" and "/amenities/footer".
// An empty resource, "*" or "/" covers every cached payload.
func PurgePrefix(resource string) string {
	resource = strings.TrimSpace(resource)
	if resource == "" || resource == "*" || resource == "/" {
		return CacheKeyPrefix
	}
	if !strings.HasPrefix(resource, "/") {
		resource = "/" + resource
	}
	return CacheKeyPrefix + strings.TrimSuffix(resource, "/")
}
