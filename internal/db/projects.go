package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/model"
)

// CreateProject inserts a new project
func (db *DB) CreateProject(ctx context.Context, p model.Project) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO projects (id, name, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Color,
		p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetProject fetches a project by ID
func (db *DB) GetProject(ctx context.Context, id string) (model.Project, error) {
	var p model.Project
	var createdAt, updatedAt string

	err := db.QueryRowContext(ctx, `
		SELECT id, name, color, created_at, updated_at FROM projects WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Color, &createdAt, &updatedAt)
	if err != nil {
		return model.Project{}, err
	}

	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return p, nil
}

// ListProjects returns all projects
func (db *DB) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, color, created_at, updated_at FROM projects ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		var createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.Name, &p.Color, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// DeleteProject removes a project. The inbox project cannot be deleted.
func (db *DB) DeleteProject(ctx context.Context, id string) error {
	if id == "inbox" {
		return fmt.Errorf("cannot delete the inbox project")
	}
	_, err := db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
