package db

import (
	"context"
	"fmt"
)

// schema is the minimal resumes table. JSONB columns keep the document and
// customization in their wire shapes so the normalizer stays the single
// source of truth for structure.
const schema = `
CREATE TABLE IF NOT EXISTS resumes (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name          TEXT NOT NULL,
	template_id   TEXT NOT NULL,
	document      JSONB NOT NULL,
	customization JSONB,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS resumes_updated_at_idx ON resumes (updated_at DESC);
`

// Migrate applies the schema. Safe to run at every startup.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
