package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches wrapped no rows", func(t *testing.T) {
		if !isNotFound(fmt.Errorf("select blob: %w", sql.ErrNoRows)) {
			t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(fmt.Errorf("pq: relation blobs does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}
