package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/dmitrijs2005/hopeconnect/internal/dbx"
	"github.com/dmitrijs2005/hopeconnect/internal/server/models"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/repomanager"
)

// Accepted layouts for ProjectInput.Date.
var projectDateLayouts = []string{time.RFC3339, time.DateOnly}

type ProjectInput struct {
	Type        string
	Description string
	Date        string
	ImageURL    string
}

type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager) *ProjectService {
	return &ProjectService{db: db, repomanager: m}
}

func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	if err := requireFields(
		"type", in.Type,
		"description", in.Description,
		"date", in.Date,
		"image_url", in.ImageURL,
	); err != nil {
		return nil, err
	}

	date, err := parseProjectDate(in.Date)
	if err != nil {
		return nil, err
	}

	var project *models.Project
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		project, err = s.repomanager.Projects(tx).Create(ctx, &models.Project{
			Type:        in.Type,
			Date:        date,
			Description: in.Description,
			ImageURL:    in.ImageURL,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	project.Volunteers = make([]models.Volunteer, 0)
	return project, nil
}

// List returns every project with its volunteer signups.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repomanager.Projects(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	signups, err := s.repomanager.Volunteers(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*models.Project, len(projects))
	for i := range projects {
		projects[i].Volunteers = make([]models.Volunteer, 0)
		byID[projects[i].ID] = &projects[i]
	}
	for _, v := range signups {
		if p, ok := byID[v.EventID]; ok {
			p.Volunteers = append(p.Volunteers, v)
		}
	}

	return projects, nil
}

// Delete removes a project together with its volunteer signups in one
// transaction. A missing project yields common.ErrorNotFound.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Projects(tx).GetByID(ctx, id); err != nil {
			return err
		}
		if _, err := s.repomanager.Volunteers(tx).DeleteByEvent(ctx, id); err != nil {
			return err
		}
		return s.repomanager.Projects(tx).Delete(ctx, id)
	})
}

func parseProjectDate(value string) (time.Time, error) {
	for _, layout := range projectDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, common.NewValidationError("Invalid date format, expected YYYY-MM-DD or RFC3339: %q", value)
}
