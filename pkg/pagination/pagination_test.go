package pagination

import (
	"errors"
	"testing"

	"github.com/ajitpratap0/mcp-schema-go/pkg/protocol"
)

func TestCursorRoundTrip(t *testing.T) {
	for _, offset := range []int{0, 1, 50, 12345} {
		cursor := EncodeCursor(offset)
		if cursor == "" {
			t.Fatalf("Expected non-empty cursor for offset %d", offset)
		}
		got, err := DecodeCursor(cursor)
		if err != nil {
			t.Fatalf("DecodeCursor failed for offset %d: %v", offset, err)
		}
		if got != offset {
			t.Errorf("Expected offset %d, got %d", offset, got)
		}
	}
}

func TestDecodeCursorEmpty(t *testing.T) {
	offset, err := DecodeCursor("")
	if err != nil {
		t.Fatalf("Expected empty cursor to decode, got error: %v", err)
	}
	if offset != 0 {
		t.Errorf("Expected offset 0 for empty cursor, got %d", offset)
	}
}

func TestDecodeCursorInvalid(t *testing.T) {
	for _, cursor := range []protocol.Cursor{"not base64!", "aW52YWxpZA", "bm90LWpzb24="} {
		if _, err := DecodeCursor(cursor); !errors.Is(err, ErrInvalidCursor) {
			t.Errorf("Expected ErrInvalidCursor for %q, got %v", cursor, err)
		}
	}
}

func TestValidateLimit(t *testing.T) {
	if err := ValidateLimit(0); err != nil {
		t.Errorf("Expected limit 0 to be valid, got %v", err)
	}
	if err := ValidateLimit(50); err != nil {
		t.Errorf("Expected limit 50 to be valid, got %v", err)
	}
	if err := ValidateLimit(-1); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("Expected ErrInvalidLimit for -1, got %v", err)
	}
	if err := ValidateLimit(MaxLimit + 1); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("Expected ErrInvalidLimit above max, got %v", err)
	}
}

func TestApplyLimitDefaults(t *testing.T) {
	if got := ApplyLimitDefaults(0); got != DefaultLimit {
		t.Errorf("Expected default limit, got %d", got)
	}
	if got := ApplyLimitDefaults(MaxLimit + 100); got != MaxLimit {
		t.Errorf("Expected limit capped at max, got %d", got)
	}
	if got := ApplyLimitDefaults(25); got != 25 {
		t.Errorf("Expected limit 25 preserved, got %d", got)
	}
}

func TestPage(t *testing.T) {
	// First page of 120 items with the default limit
	start, end, next, err := Page(120, nil, DefaultLimit)
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if start != 0 || end != DefaultLimit {
		t.Errorf("Expected [0, %d), got [%d, %d)", DefaultLimit, start, end)
	}
	if next == "" {
		t.Fatal("Expected a next cursor")
	}

	// Second page via the returned cursor
	start, end, next, err = Page(120, NextParams(next), DefaultLimit)
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if start != DefaultLimit || end != 100 {
		t.Errorf("Expected [%d, 100), got [%d, %d)", DefaultLimit, start, end)
	}

	// Final page exhausts the collection
	start, end, next, err = Page(120, NextParams(next), DefaultLimit)
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if start != 100 || end != 120 {
		t.Errorf("Expected [100, 120), got [%d, %d)", start, end)
	}
	if next != "" {
		t.Errorf("Expected no next cursor on the final page, got %q", next)
	}
}

func TestPageCursorPastEnd(t *testing.T) {
	start, end, next, err := Page(10, NextParams(EncodeCursor(50)), DefaultLimit)
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if start != 10 || end != 10 || next != "" {
		t.Errorf("Expected empty final page, got [%d, %d) next=%q", start, end, next)
	}
}

func TestCollector(t *testing.T) {
	collector := NewCollector()
	if !collector.HasMore {
		t.Fatal("Expected a fresh collector to report more pages")
	}

	collector.Update(EncodeCursor(50), 50)
	if !collector.HasMore {
		t.Error("Expected more pages after a cursor-bearing update")
	}
	if collector.TotalItems != 50 {
		t.Errorf("Expected 50 items, got %d", collector.TotalItems)
	}
	if collector.NextParams().Cursor != collector.NextCursor {
		t.Error("Expected NextParams to carry the collector cursor")
	}

	collector.Update("", 20)
	if collector.HasMore {
		t.Error("Expected no more pages after an empty cursor")
	}
	if collector.TotalItems != 70 {
		t.Errorf("Expected 70 items, got %d", collector.TotalItems)
	}
}
