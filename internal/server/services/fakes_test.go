package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/dmitrijs2005/hopeconnect/internal/dbx"
	"github.com/dmitrijs2005/hopeconnect/internal/server/auth"
	"github.com/dmitrijs2005/hopeconnect/internal/server/config"
	"github.com/dmitrijs2005/hopeconnect/internal/server/models"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/donations"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/projects"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/users"
	"github.com/dmitrijs2005/hopeconnect/internal/server/repositories/volunteers"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
		PasswordHashCost:            4,
	}
}

func testIssuer() *auth.Issuer {
	cfg := testConfig()
	return auth.NewIssuer([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
}

// fakeStore is an in-memory backing for all four repositories. failOn
// injects an error for the named method.
type fakeStore struct {
	users      []models.User
	donations  []models.Donation
	projects   []models.Project
	volunteers []models.Volunteer
	nextID     int64
	failOn     map[string]error

	// racer is stored when Users.Create fails, standing in for a
	// concurrent request that inserted the same email first.
	racer *models.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{failOn: map[string]error{}}
}

func (s *fakeStore) fail(method string) error { return s.failOn[method] }

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

type fakeRepoManager struct{ s *fakeStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return (*fakeUsers)(m.s) }
func (m *fakeRepoManager) Donations(dbx.DBTX) donations.Repository      { return (*fakeDonations)(m.s) }
func (m *fakeRepoManager) Projects(dbx.DBTX) projects.Repository        { return (*fakeProjects)(m.s) }
func (m *fakeRepoManager) Volunteers(dbx.DBTX) volunteers.Repository    { return (*fakeVolunteers)(m.s) }

type fakeUsers fakeStore

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	s := (*fakeStore)(f)
	if err := s.fail("Users.Create"); err != nil {
		if s.racer != nil {
			s.users = append(s.users, *s.racer)
		}
		return nil, err
	}
	for _, x := range s.users {
		if x.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = s.id()
	s.users = append(s.users, *u)
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	s := (*fakeStore)(f)
	if err := s.fail("Users.GetByID"); err != nil {
		return nil, err
	}
	for _, x := range s.users {
		if x.ID == id {
			return &x, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s := (*fakeStore)(f)
	if err := s.fail("Users.GetByEmail"); err != nil {
		return nil, err
	}
	for _, x := range s.users {
		if x.Email == email {
			return &x, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) List(context.Context) ([]models.User, error) {
	s := (*fakeStore)(f)
	if err := s.fail("Users.List"); err != nil {
		return nil, err
	}
	return append([]models.User(nil), s.users...), nil
}

func (f *fakeUsers) UpdateRole(_ context.Context, id int64, role string) error {
	s := (*fakeStore)(f)
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Role = role
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeDonations fakeStore

func (f *fakeDonations) Create(_ context.Context, d *models.Donation) (*models.Donation, error) {
	s := (*fakeStore)(f)
	if err := s.fail("Donations.Create"); err != nil {
		return nil, err
	}
	d.ID = s.id()
	s.donations = append(s.donations, *d)
	return d, nil
}

func (f *fakeDonations) filter(keep func(models.Donation) bool) []models.Donation {
	out := make([]models.Donation, 0)
	for _, d := range f.donations {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func (f *fakeDonations) List(context.Context) ([]models.Donation, error) {
	return f.filter(func(models.Donation) bool { return true }), nil
}

func (f *fakeDonations) ListByUser(_ context.Context, userID int64) ([]models.Donation, error) {
	return f.filter(func(d models.Donation) bool { return d.UserID != nil && *d.UserID == userID }), nil
}

func (f *fakeDonations) ListByType(_ context.Context, t string) ([]models.Donation, error) {
	return f.filter(func(d models.Donation) bool { return d.Type == t }), nil
}

func (f *fakeDonations) ListByGroup(_ context.Context, g string) ([]models.Donation, error) {
	return f.filter(func(d models.Donation) bool { return d.Group == g }), nil
}

type fakeProjects fakeStore

func (f *fakeProjects) Create(_ context.Context, p *models.Project) (*models.Project, error) {
	s := (*fakeStore)(f)
	if err := s.fail("Projects.Create"); err != nil {
		return nil, err
	}
	p.ID = s.id()
	s.projects = append(s.projects, *p)
	return p, nil
}

func (f *fakeProjects) List(context.Context) ([]models.Project, error) {
	return append([]models.Project(nil), f.projects...), nil
}

func (f *fakeProjects) GetByID(_ context.Context, id int64) (*models.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeProjects) Delete(_ context.Context, id int64) error {
	s := (*fakeStore)(f)
	if err := s.fail("Projects.Delete"); err != nil {
		return err
	}
	for i, p := range s.projects {
		if p.ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeVolunteers fakeStore

func (f *fakeVolunteers) Create(_ context.Context, v *models.Volunteer) (*models.Volunteer, error) {
	s := (*fakeStore)(f)
	if err := s.fail("Volunteers.Create"); err != nil {
		return nil, err
	}
	for _, x := range s.volunteers {
		if x.UserID == v.UserID && x.EventID == v.EventID {
			return nil, common.ErrorAlreadyExists
		}
	}
	v.ID = s.id()
	s.volunteers = append(s.volunteers, *v)
	return v, nil
}

func (f *fakeVolunteers) List(context.Context) ([]models.Volunteer, error) {
	return append([]models.Volunteer(nil), f.volunteers...), nil
}

func (f *fakeVolunteers) Exists(_ context.Context, userID, eventID int64) (bool, error) {
	for _, v := range f.volunteers {
		if v.UserID == userID && v.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVolunteers) Delete(_ context.Context, userID, eventID int64) error {
	for i, v := range f.volunteers {
		if v.UserID == userID && v.EventID == eventID {
			f.volunteers = append(f.volunteers[:i], f.volunteers[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeVolunteers) DeleteByEvent(_ context.Context, eventID int64) (int64, error) {
	s := (*fakeStore)(f)
	if err := s.fail("Volunteers.DeleteByEvent"); err != nil {
		return 0, err
	}
	kept := s.volunteers[:0]
	var n int64
	for _, v := range s.volunteers {
		if v.EventID == eventID {
			n++
			continue
		}
		kept = append(kept, v)
	}
	s.volunteers = kept
	return n, nil
}
