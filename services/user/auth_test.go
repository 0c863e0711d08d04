// File: services/user/auth_test.go
package user

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"entrega/database"
	"entrega/models"
)

// memUserRepo is an in-memory stand-in for the Postgres repository.
type memUserRepo struct {
	byEmail map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*models.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *models.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func seedUser(t *testing.T, repo *memUserRepo, email, password string, confirmed bool) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	repo.byEmail[email] = &models.User{
		ID:             "u-" + email,
		Name:           "Maria",
		Email:          email,
		Password:       string(hashed),
		EmailConfirmed: confirmed,
	}
}

func TestRegister_NewAccount(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(context.Background(), "Maria", "maria@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID == "" || resp.Token == "" {
		t.Errorf("expected id and token, got %+v", resp)
	}

	stored := repo.byEmail["maria@example.com"]
	if stored == nil {
		t.Fatal("account was not persisted")
	}
	if stored.Password == "s3cretpass" {
		t.Error("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cretpass")) != nil {
		t.Error("stored hash does not verify against the password")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "maria@example.com", "s3cretpass", true)
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(context.Background(), "Maria", "maria@example.com", "s3cretpass")
	if err != ErrAlreadyRegistered {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
	if got := database.Classify(err); got != database.CategoryEmailRegistered {
		t.Errorf("expected email_already_registered category, got %s", got)
	}
}

func TestAuthenticate_Success(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "maria@example.com", "s3cretpass", true)
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Authenticate(context.Background(), "maria@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" || resp.Email != "maria@example.com" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "maria@example.com", "s3cretpass", true)
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Authenticate(context.Background(), "maria@example.com", "wrong")
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if got := database.Classify(err); got != database.CategoryInvalidCredentials {
		t.Errorf("expected invalid_credentials category, got %s", got)
	}
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnconfirmedEmail(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "maria@example.com", "s3cretpass", false)
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Authenticate(context.Background(), "maria@example.com", "s3cretpass")
	if err != ErrEmailNotConfirmed {
		t.Fatalf("expected ErrEmailNotConfirmed, got %v", err)
	}
	if got := database.Classify(err); got != database.CategoryEmailUnconfirmed {
		t.Errorf("expected email_unconfirmed category, got %s", got)
	}
}
