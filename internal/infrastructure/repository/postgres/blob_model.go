package postgres

import "time"

type blobTableModel struct {
	Key         string    `db:"key"`
	ContentType string    `db:"content_type"`
	Body        []byte    `db:"body"`
	UpdatedAt   time.Time `db:"updated_at"`
}
