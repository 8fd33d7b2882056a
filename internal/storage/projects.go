package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/quarryhq/tally/internal/common"
	"github.com/quarryhq/tally/internal/model"
	"github.com/shopspring/decimal"
)

// AddProject persists a new project, assigning its id and timestamps.
func (s *SQLiteStorage) AddProject(ctx context.Context, project *model.Project) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if project != nil && project.Status == "" {
		project.Status = model.ProjectPlanning
	}
	if err := validateProject(project); err != nil {
		return err
	}

	project.ID = model.NewID()
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projects (
				id, name, status, client, location, start_date, end_date,
				budget, progress, description, notes, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, project.ID, project.Name, string(project.Status), project.Client,
			project.Location, nullTime(project.StartDate), nullTime(project.EndDate),
			nullDecimal(project.Budget), project.Progress, project.Description,
			project.Notes, project.CreatedAt, project.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert project: %w", err)
		}
		return nil
	})
}

// UpdateProject saves changes to an existing project.
func (s *SQLiteStorage) UpdateProject(ctx context.Context, project *model.Project) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProject(project); err != nil {
		return err
	}
	if err := validateString(project.ID, "project.ID"); err != nil {
		return err
	}

	project.UpdatedAt = time.Now()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE projects
			SET name = ?, status = ?, client = ?, location = ?, start_date = ?,
			    end_date = ?, budget = ?, progress = ?, description = ?, notes = ?,
			    updated_at = ?
			WHERE id = ?
		`, project.Name, string(project.Status), project.Client, project.Location,
			nullTime(project.StartDate), nullTime(project.EndDate),
			nullDecimal(project.Budget), project.Progress, project.Description,
			project.Notes, project.UpdatedAt, project.ID)
		if err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check update result: %w", err)
		}
		if affected == 0 {
			return common.ErrNotFound
		}
		return nil
	})
}

// DeleteProject removes a project by id. Transactions booked against it are
// left untouched.
func (s *SQLiteStorage) DeleteProject(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check delete result: %w", err)
		}
		if affected == 0 {
			return common.ErrNotFound
		}
		return nil
	})
}

// GetProject retrieves a project by id.
func (s *SQLiteStorage) GetProject(ctx context.Context, id string) (*model.Project, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, projectSelect+` WHERE id = ?`, id)
	project, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// ListProjects retrieves all projects in creation order.
func (s *SQLiteStorage) ListProjects(ctx context.Context) ([]model.Project, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.queryProjects(ctx, projectSelect+` ORDER BY created_at, id`)
}

// ListProjectsByStatus retrieves projects in a given lifecycle stage.
func (s *SQLiteStorage) ListProjectsByStatus(ctx context.Context, status model.ProjectStatus) ([]model.Project, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.queryProjects(ctx, projectSelect+` WHERE status = ? ORDER BY created_at, id`, string(status))
}

// SearchProjects returns projects whose name, client, location, or
// description contains the query, case-insensitively.
func (s *SQLiteStorage) SearchProjects(ctx context.Context, query string) ([]model.Project, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(query, "query"); err != nil {
		return nil, err
	}

	like := "%" + query + "%"
	return s.queryProjects(ctx, projectSelect+`
		WHERE name LIKE ? OR client LIKE ? OR location LIKE ? OR description LIKE ?
		ORDER BY created_at, id`, like, like, like, like)
}

const projectSelect = `
	SELECT id, name, status, client, location, start_date, end_date,
	       budget, progress, description, notes, created_at, updated_at
	FROM projects`

func (s *SQLiteStorage) queryProjects(ctx context.Context, query string, args ...any) ([]model.Project, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []model.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func scanProject(row rowScanner) (*model.Project, error) {
	var project model.Project
	var status string
	var start, end sql.NullTime
	var budget sql.NullString

	err := row.Scan(
		&project.ID,
		&project.Name,
		&status,
		&project.Client,
		&project.Location,
		&start,
		&end,
		&budget,
		&project.Progress,
		&project.Description,
		&project.Notes,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	project.Status = model.ProjectStatus(status)
	if start.Valid {
		t := start.Time
		project.StartDate = &t
	}
	if end.Valid {
		t := end.Time
		project.EndDate = &t
	}
	project.Budget = decimalOrNil(budget)

	return &project, nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func nullDecimal(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}
