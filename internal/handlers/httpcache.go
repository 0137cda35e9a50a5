package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
)

// cacheMaxAge is the advertised validity window for cacheable responses.
const cacheMaxAge = 5 * time.Minute

// setCacheHeaders advertises the store's modification time and a fixed
// validity window.
func setCacheHeaders(c fiber.Ctx, lastUpdate int64) {
	c.Set(fiber.HeaderLastModified, httpDate(time.Unix(lastUpdate, 0)))
	c.Set(fiber.HeaderCacheControl, fmt.Sprintf("public, max-age=%d", int(cacheMaxAge.Seconds())))
	c.Set(fiber.HeaderExpires, httpDate(time.Now().Add(cacheMaxAge)))
}

// notModifiedSince reports whether the client's cached copy is at least
// as fresh as the store. Some clients append "; length=..." to
// If-Modified-Since; the suffix is stripped before parsing. An
// unparseable value counts as stale and gets full content.
func notModifiedSince(c fiber.Ctx, lastUpdate int64) bool {
	raw := c.Get(fiber.HeaderIfModifiedSince)
	if raw == "" {
		return false
	}
	if i := strings.IndexByte(raw, ';'); i >= 0 {
		raw = raw[:i]
	}
	clientTime, err := http.ParseTime(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return lastUpdate <= clientTime.Unix()
}

// httpDate formats a time as an RFC 1123 GMT date for HTTP headers.
func httpDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}
