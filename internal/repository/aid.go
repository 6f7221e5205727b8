package repository

import (
	"context"
	"fmt"

	"github.com/YoussefElshafei/BridgeAid-Project/internal/models"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AidRepository struct {
	db *pgxpool.Pool
}

func NewAidRepository(db *pgxpool.Pool) service.AidRepository {
	return &AidRepository{db: db}
}

// CreateAidRequest сохраняет запрос помощи
func (r *AidRepository) CreateAidRequest(ctx context.Context, request *models.AidRequest) error {
	query := `
		INSERT INTO aid_requests (id, user_id, name, contact, address, aid_type, description, urgency, household_size)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query,
		request.ID,
		request.UserID,
		request.Name,
		request.Contact,
		request.Address,
		request.AidType,
		request.Description,
		request.Urgency,
		request.HouseholdSize,
	).Scan(&request.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create aid request: %w", err)
	}
	return nil
}

// ListAidRequests возвращает запросы помощи, срочные и новые первыми
func (r *AidRepository) ListAidRequests(ctx context.Context) ([]*models.AidRequest, error) {
	query := `
		SELECT id, user_id, name, contact, address, aid_type, description, urgency, household_size, created_at
		FROM aid_requests
		ORDER BY
			CASE urgency WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END,
			created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list aid requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.AidRequest, 0)
	for rows.Next() {
		request := &models.AidRequest{}
		err := rows.Scan(
			&request.ID,
			&request.UserID,
			&request.Name,
			&request.Contact,
			&request.Address,
			&request.AidType,
			&request.Description,
			&request.Urgency,
			&request.HouseholdSize,
			&request.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan aid request row: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error aid requests iteration: %w", err)
	}
	return requests, nil
}
