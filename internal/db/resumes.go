package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-studio/internal/types"
)

// ErrNotFound is returned when a resume id does not exist.
var ErrNotFound = errors.New("resume not found")

// SavedResume is one stored resume: the canonical document, the user's
// partial customization, and the selected template.
type SavedResume struct {
	ID            uuid.UUID                 `json:"id"`
	Name          string                    `json:"name"`
	TemplateID    string                    `json:"template_id"`
	Document      *types.ResumeDocument     `json:"document"`
	Customization *types.CustomizationInput `json:"customization,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

// CreateResume stores a new resume and returns its id.
func (db *DB) CreateResume(ctx context.Context, name, templateID string, doc *types.ResumeDocument, custom *types.CustomizationInput) (uuid.UUID, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	customJSON, err := json.Marshal(custom)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal customization: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (name, template_id, document, customization)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		name, templateID, docJSON, customJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// GetResume loads one resume by id.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*SavedResume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, name, template_id, document, customization, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		id,
	)
	return scanResume(row)
}

// ListResumes returns all saved resumes, most recently updated first.
func (db *DB) ListResumes(ctx context.Context) ([]*SavedResume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, template_id, document, customization, created_at, updated_at
		 FROM resumes ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []*SavedResume
	for rows.Next() {
		r, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resumes: %w", err)
	}
	return resumes, nil
}

// UpdateResume replaces a resume's stored content.
func (db *DB) UpdateResume(ctx context.Context, id uuid.UUID, name, templateID string, doc *types.ResumeDocument, custom *types.CustomizationInput) error {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	customJSON, err := json.Marshal(custom)
	if err != nil {
		return fmt.Errorf("failed to marshal customization: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE resumes
		 SET name = $1, template_id = $2, document = $3, customization = $4, updated_at = NOW()
		 WHERE id = $5`,
		name, templateID, docJSON, customJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteResume removes a resume by id.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanResume decodes one resumes row.
func scanResume(row pgx.Row) (*SavedResume, error) {
	var (
		r          SavedResume
		docJSON    []byte
		customJSON []byte
	)
	err := row.Scan(&r.ID, &r.Name, &r.TemplateID, &docJSON, &customJSON, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan resume: %w", err)
	}

	if len(docJSON) > 0 {
		var doc types.ResumeDocument
		if err := json.Unmarshal(docJSON, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		r.Document = &doc
	}
	if len(customJSON) > 0 && string(customJSON) != "null" {
		var custom types.CustomizationInput
		if err := json.Unmarshal(customJSON, &custom); err != nil {
			return nil, fmt.Errorf("failed to unmarshal customization: %w", err)
		}
		r.Customization = &custom
	}
	return &r, nil
}
