package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches pq error code", func(t *testing.T) {
		err := fmt.Errorf("insert player: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for wrapped unique violation")
		}
	})

	t.Run("matches message from traced driver", func(t *testing.T) {
		err := fakeErr(`pq: duplicate key value violates unique constraint "players_name_key"`)
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for duplicate key message")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "23503"}) {
			t.Fatalf("expected false for foreign key violation")
		}
		if isUniqueViolation(nil) {
			t.Fatalf("expected false for nil")
		}
	})
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !isForeignKeyViolation(fmt.Errorf("wrap: %w", &pq.Error{Code: "23503"})) {
		t.Fatalf("expected true for foreign key violation")
	}
	if isForeignKeyViolation(fakeErr("boom")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get level: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
}

func TestNullStringHelpers(t *testing.T) {
	if v := nullString("  "); v.Valid {
		t.Fatalf("expected blank string to be null")
	}
	if v := nullString(" 2024-01-02 "); !v.Valid || v.String != "2024-01-02" {
		t.Fatalf("unexpected null string: %+v", v)
	}
	if got := nullStringValue(sql.NullString{}); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
}

func TestStringArrayHelpers(t *testing.T) {
	if arr := stringArray(nil); arr == nil || len(arr) != 0 {
		t.Fatalf("expected empty non-nil array, got %#v", arr)
	}

	src := pq.StringArray{"a", "b"}
	out := copyStrings(src)
	out[0] = "z"
	if src[0] != "a" {
		t.Fatalf("copy must not alias the source")
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
