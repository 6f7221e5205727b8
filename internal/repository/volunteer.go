package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/YoussefElshafei/BridgeAid-Project/internal/models"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/service"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VolunteerRepository struct {
	db *pgxpool.Pool
}

func NewVolunteerRepository(db *pgxpool.Pool) service.VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// CreateVolunteer создает запись волонтера; повторная регистрация того же
// пользователя отображается в ErrVolunteerExists
func (r *VolunteerRepository) CreateVolunteer(ctx context.Context, volunteer *models.Volunteer) error {
	query := `
		INSERT INTO volunteers (id, user_id, email, legal_name, location, category)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query,
		volunteer.ID,
		volunteer.UserID,
		volunteer.Email,
		volunteer.LegalName,
		volunteer.Location,
		volunteer.Category,
	).Scan(&volunteer.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return service.ErrVolunteerExists
		}
		return fmt.Errorf("failed to create volunteer: %w", err)
	}
	return nil
}

// ListVolunteers возвращает всех волонтеров, новые первыми
func (r *VolunteerRepository) ListVolunteers(ctx context.Context) ([]*models.Volunteer, error) {
	query := `
		SELECT id, user_id, email, legal_name, location, category, created_at
		FROM volunteers
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}
	defer rows.Close()

	volunteers := make([]*models.Volunteer, 0)
	for rows.Next() {
		volunteer := &models.Volunteer{}
		err := rows.Scan(
			&volunteer.ID,
			&volunteer.UserID,
			&volunteer.Email,
			&volunteer.LegalName,
			&volunteer.Location,
			&volunteer.Category,
			&volunteer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan volunteer row: %w", err)
		}
		volunteers = append(volunteers, volunteer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error volunteers iteration: %w", err)
	}
	return volunteers, nil
}
