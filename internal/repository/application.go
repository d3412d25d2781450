package repository

import (
	"context"
	"database/sql"

	"github.com/hirebase/hirebase-go/internal/model"
)

// ApplicationRepository reads submitted job applications.
type ApplicationRepository struct {
	db *sql.DB
}

// NewApplicationRepository creates a new ApplicationRepository.
func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// ListAll returns every submitted application, newest first.
func (r *ApplicationRepository) ListAll(ctx context.Context) ([]model.Application, error) {
	query := `SELECT application_id, person_id, availability_id, status, applicationdate, openapplicationstatus
		FROM application ORDER BY applicationdate DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []model.Application
	for rows.Next() {
		var a model.Application
		if err := rows.Scan(
			&a.ApplicationID, &a.PersonID, &a.AvailabilityID,
			&a.Status, &a.ApplicationDate, &a.OpenApplicationStatus,
		); err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}

	return applications, rows.Err()
}
