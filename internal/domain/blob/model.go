package blob

import (
	"fmt"
	"strings"
	"time"
)

const (
	ContentTypeJSON     = "application/json"
	ContentTypeJSONL    = "application/x-ndjson"
	ContentTypeText     = "text/plain"
	ContentTypeMarkdown = "text/markdown"
)

// Object is one stored blob.
type Object struct {
	Key         string
	ContentType string
	Body        []byte
	UpdatedAt   time.Time
}

func RawPlayByPlayKey(gameID int64) string {
	return fmt.Sprintf("raw/pbp/%d.json", gameID)
}

func RawStoryKey(gameID int64) string {
	return fmt.Sprintf("raw/story/%d.json", gameID)
}

func EventsKey(gameID int64) string {
	return fmt.Sprintf("derived/events/%d.jsonl", gameID)
}

func StatsSummaryKey(gameID int64) string {
	return fmt.Sprintf("derived/summary/stats/%d.txt", gameID)
}

func AISummaryKey(gameID int64) string {
	return fmt.Sprintf("derived/summary/ai/%d.md", gameID)
}

func DateIndexKey(date string) string {
	return "indexes/by_date/" + date + ".json"
}

// ValidKey rejects empty keys and keys that could escape a storage root.
func ValidKey(key string) bool {
	if strings.TrimSpace(key) == "" || strings.HasPrefix(key, "/") {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}
