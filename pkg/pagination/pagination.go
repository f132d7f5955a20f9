// Package pagination provides helpers for the cursor-paginated list
// operations of the Model Context Protocol.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ajitpratap0/mcp-schema-go/pkg/protocol"
)

const (
	// DefaultLimit is the recommended default page size for paginated results
	DefaultLimit = 50

	// MaxLimit is the maximum allowed page size for paginated results
	MaxLimit = 200
)

var (
	// ErrInvalidLimit is returned when the pagination limit is invalid
	ErrInvalidLimit = errors.New("pagination limit must be greater than 0 and less than or equal to MaxLimit")

	// ErrInvalidCursor is returned when a pagination cursor is invalid
	ErrInvalidCursor = errors.New("invalid pagination cursor format")
)

// cursorPayload is the decoded form of the opaque cursor this package
// produces. Cursors remain opaque on the wire; clients must not parse them.
type cursorPayload struct {
	Offset int `json:"offset"`
}

// EncodeCursor produces an opaque cursor pointing at the given offset.
func EncodeCursor(offset int) protocol.Cursor {
	raw, _ := json.Marshal(cursorPayload{Offset: offset})
	return protocol.Cursor(base64.URLEncoding.EncodeToString(raw))
}

// DecodeCursor recovers the offset from a cursor produced by EncodeCursor.
// An empty cursor means the first page.
func DecodeCursor(cursor protocol.Cursor) (int, error) {
	if cursor == "" {
		return 0, nil
	}
	raw, err := base64.URLEncoding.DecodeString(string(cursor))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	var payload cursorPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	if payload.Offset < 0 {
		return 0, fmt.Errorf("%w: negative offset", ErrInvalidCursor)
	}
	return payload.Offset, nil
}

// ValidateLimit validates a page size. Zero means "use the default".
func ValidateLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	if limit > MaxLimit {
		return fmt.Errorf("%w: got %d, max is %d", ErrInvalidLimit, limit, MaxLimit)
	}
	return nil
}

// ApplyLimitDefaults clamps a page size into the valid range.
func ApplyLimitDefaults(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Page computes the half-open range [start, end) of the page selected by the
// params cursor over a collection of total items, and the cursor for the
// following page. A zero-valued next cursor means the collection is
// exhausted.
func Page(total int, params *protocol.PaginatedParams, limit int) (start, end int, next protocol.Cursor, err error) {
	if err := ValidateLimit(limit); err != nil {
		return 0, 0, "", err
	}
	limit = ApplyLimitDefaults(limit)

	var cursor protocol.Cursor
	if params != nil {
		cursor = params.Cursor
	}
	start, err = DecodeCursor(cursor)
	if err != nil {
		return 0, 0, "", err
	}
	if start > total {
		start = total
	}

	end = start + limit
	if end >= total {
		end = total
		return start, end, "", nil
	}
	return start, end, EncodeCursor(end), nil
}

// NextParams builds the params for the follow-up list request.
func NextParams(next protocol.Cursor) *protocol.PaginatedParams {
	return &protocol.PaginatedParams{Cursor: next}
}

// Collector tracks progress while walking every page of a list operation.
type Collector struct {
	// NextCursor holds the pagination cursor for the next page
	NextCursor protocol.Cursor
	// HasMore indicates if there are more pages to fetch
	HasMore bool
	// TotalItems is the total number of items collected so far
	TotalItems int
}

// NewCollector creates a new pagination collector
func NewCollector() *Collector {
	return &Collector{
		HasMore: true,
	}
}

// Update records one received page: its next cursor and item count.
func (c *Collector) Update(nextCursor protocol.Cursor, items int) {
	c.NextCursor = nextCursor
	c.HasMore = nextCursor != ""
	c.TotalItems += items
}

// NextParams returns the params for the next page request.
func (c *Collector) NextParams() *protocol.PaginatedParams {
	return NextParams(c.NextCursor)
}
