// Package services contains server-side business logic. Each service owns a
// *sql.DB and a repomanager.RepositoryManager and runs every write inside
// dbx.WithTx.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/dmitrijs2005/hopeconnect/internal/cryptox"
	"github.com/dmitrijs2005/hopeconnect/internal/dbx"
	"github.com/dmitrijs2005/hopeconnect/internal/server/auth"
	"github.com/dmitrijs2005/hopeconnect/internal/server/config"
	"github.com/dmitrijs2005/hopeconnect/internal/server/models"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/repomanager"
)

// Placeholder names given to accounts created through federated login.
const (
	FederatedFirstName = "Firebase"
	FederatedLastName  = "Login"
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginResult is a freshly issued access token and the user it was issued for.
type LoginResult struct {
	AccessToken string
	User        *models.User
}

// UserService is the credential store: registration, password login,
// federated login and read access to user aggregates.
type UserService struct {
	db               *sql.DB
	repomanager      repomanager.RepositoryManager
	issuer           *auth.Issuer
	passwordHashCost int
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, issuer *auth.Issuer, cfg *config.Config) *UserService {
	return &UserService{
		db:               db,
		repomanager:      m,
		issuer:           issuer,
		passwordHashCost: cfg.PasswordHashCost,
	}
}

// Register creates a user with role "user". The email must not be taken;
// the check runs in the same transaction as the insert and the UNIQUE
// constraint catches the concurrent case.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	return s.register(ctx, in, auth.RoleUser)
}

// RegisterAdmin is Register for operator-created administrator accounts.
func (s *UserService) RegisterAdmin(ctx context.Context, in RegisterInput) (*models.User, error) {
	return s.register(ctx, in, auth.RoleAdmin)
}

// SetRole changes the role of the user with the given email.
func (s *UserService) SetRole(ctx context.Context, email, role string) (*models.User, error) {
	if role != auth.RoleUser && role != auth.RoleAdmin {
		return nil, common.NewValidationError("unknown role %q", role)
	}

	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		var err error
		if user, err = repo.GetByEmail(ctx, email); err != nil {
			return err
		}
		if err := repo.UpdateRole(ctx, user.ID, role); err != nil {
			return err
		}
		user.Role = role
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) register(ctx context.Context, in RegisterInput, role string) (*models.User, error) {
	if err := requireFields("email", in.Email); err != nil {
		return nil, err
	}

	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		// A taken email is a conflict whatever else the payload holds.
		_, err := repo.GetByEmail(ctx, in.Email)
		switch {
		case err == nil:
			return common.ErrorAlreadyExists
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}

		if err := requireFields(
			"password", in.Password,
			"first_name", in.FirstName,
			"last_name", in.LastName,
		); err != nil {
			return err
		}

		hash, err := cryptox.HashPassword(in.Password, s.passwordHashCost)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}

		user, err = repo.Create(ctx, &models.User{
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Email:        in.Email,
			PasswordHash: hash,
			Role:         role,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login checks the password and issues a token. Unknown email and wrong
// password both yield common.ErrorInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := requireFields("email", email, "password", password); err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, err
	}

	if !cryptox.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorInvalidCredentials
	}

	return s.issue(user)
}

// FederatedLogin trusts an externally verified email, creating the account
// on first use, and issues a token for it.
func (s *UserService) FederatedLogin(ctx context.Context, email string) (*LoginResult, error) {
	user, err := s.FindOrCreateByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// FindOrCreateByEmail returns the user with the given email, creating one
// with placeholder names and no password if none exists.
func (s *UserService) FindOrCreateByEmail(ctx context.Context, email string) (*models.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, common.NewValidationError("Email is required")
	}

	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		var err error
		user, err = repo.GetByEmail(ctx, email)
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		user, err = repo.Create(ctx, &models.User{
			FirstName: FederatedFirstName,
			LastName:  FederatedLastName,
			Email:     email,
			Role:      auth.RoleUser,
		})
		return err
	})

	// lost the race to a concurrent first login
	if errors.Is(err, common.ErrorAlreadyExists) {
		return s.repomanager.Users(s.db).GetByEmail(ctx, email)
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// List returns every user with its donations and volunteer signups.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	donations, err := s.repomanager.Donations(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	signups, err := s.repomanager.Volunteers(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	byUser := make(map[int64]*models.User, len(users))
	for i := range users {
		users[i].Donations = make([]models.Donation, 0)
		users[i].VolunteerSignups = make([]models.Volunteer, 0)
		byUser[users[i].ID] = &users[i]
	}
	for _, d := range donations {
		if d.UserID == nil {
			continue
		}
		if u, ok := byUser[*d.UserID]; ok {
			u.Donations = append(u.Donations, d)
		}
	}
	for _, v := range signups {
		if u, ok := byUser[v.UserID]; ok {
			u.VolunteerSignups = append(u.VolunteerSignups, v)
		}
	}

	return users, nil
}

// Donations lists the donations of an existing user.
func (s *UserService) Donations(ctx context.Context, userID int64) ([]models.Donation, error) {
	if _, err := s.repomanager.Users(s.db).GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repomanager.Donations(s.db).ListByUser(ctx, userID)
}

func (s *UserService) issue(user *models.User) (*LoginResult, error) {
	token, err := s.issuer.Issue(auth.Identity{ID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	return &LoginResult{AccessToken: token, User: user}, nil
}

// requireFields takes name/value pairs and reports the first blank value.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return common.MissingFieldError(pairs[i])
		}
	}
	return nil
}
