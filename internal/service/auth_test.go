package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hirebase/hirebase-go/internal/crypto"
	"github.com/hirebase/hirebase-go/internal/model"
	"github.com/hirebase/hirebase-go/internal/repository"
)

// fakeUserStore is an in-memory UserStore enforcing the same uniqueness
// rules as the database.
type fakeUserStore struct {
	users  []*model.User
	nextID int64
	err    error
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}
	f.nextID++
	user.PersonID = f.nextID
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func storeWithUser(t *testing.T, username, password string) *fakeUserStore {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return &fakeUserStore{users: []*model.User{{
		PersonID:     1,
		Name:         "Alice",
		Surname:      "Andersson",
		Pnr:          "19900101-1234",
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: hash,
		RoleID:       model.RoleApplicant,
	}}, nextID: 1}
}

func TestLogin_Success(t *testing.T) {
	store := storeWithUser(t, "alice", "correct")
	svc := NewAuthService(store)

	user, err := svc.Login(context.Background(), "alice", "correct")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("Login() username = %q, want %q", user.Username, "alice")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	store := storeWithUser(t, "alice", "correct")
	svc := NewAuthService(store)

	_, err := svc.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	store := storeWithUser(t, "alice", "correct")
	svc := NewAuthService(store)

	_, err := svc.Login(context.Background(), "mallory", "correct")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_StoreFailurePassesThrough(t *testing.T) {
	storeErr := errors.New("store unreachable")
	svc := NewAuthService(&fakeUserStore{err: storeErr})

	_, err := svc.Login(context.Background(), "alice", "correct")
	if !errors.Is(err, storeErr) {
		t.Errorf("Login() error = %v, want store error passed through", err)
	}
}

func validRegistration() model.RegisterRequest {
	return model.RegisterRequest{
		Name:     "Bob",
		Surname:  "Berg",
		Pnr:      "19851231-5678",
		Email:    "bob@example.com",
		Username: "bob",
		Password: "hunter2-but-long",
	}
}

func TestRegister_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.RegisterRequest)
		wantMsg string
	}{
		{"empty name", func(r *model.RegisterRequest) { r.Name = "" }, "name is required"},
		{"empty surname", func(r *model.RegisterRequest) { r.Surname = "" }, "surname is required"},
		{"empty email", func(r *model.RegisterRequest) { r.Email = "" }, "email is required"},
		{"empty username", func(r *model.RegisterRequest) { r.Username = "" }, "username is required"},
		{"empty password", func(r *model.RegisterRequest) { r.Password = "" }, "password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeUserStore{}
			svc := NewAuthService(store)

			req := validRegistration()
			tt.mutate(&req)

			_, err := svc.Register(context.Background(), req)

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Register() error = %v, want ValidationError", err)
			}
			if verr.Error() != tt.wantMsg {
				t.Errorf("Register() message = %q, want %q", verr.Error(), tt.wantMsg)
			}
			if len(store.users) != 0 {
				t.Errorf("Register() wrote %d records on validation failure, want 0", len(store.users))
			}
		})
	}
}

func TestRegister_Success(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store)

	req := validRegistration()
	user, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	if user.PersonID == 0 {
		t.Error("Register() did not assign a person id")
	}
	if user.RoleID != model.RoleApplicant {
		t.Errorf("Register() role = %d, want applicant (%d)", user.RoleID, model.RoleApplicant)
	}
	if user.PasswordHash == req.Password {
		t.Error("Register() stored the plaintext password")
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !match {
		t.Errorf("Register() stored hash does not verify: match=%v err=%v", match, err)
	}
	if len(store.users) != 1 {
		t.Errorf("Register() wrote %d records, want exactly 1", len(store.users))
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store)

	req := validRegistration()
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register() unexpected error: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("second Register() error = %v, want ValidationError", err)
	}
	if len(store.users) != 1 {
		t.Errorf("store holds %d records for the username, want exactly 1", len(store.users))
	}
}

func TestRegisterThenLoginRoundTrip(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store)

	req := validRegistration()
	created, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	user, err := svc.Login(context.Background(), req.Username, req.Password)
	if err != nil {
		t.Fatalf("Login() after Register() unexpected error: %v", err)
	}

	if user.PersonID != created.PersonID ||
		user.Name != req.Name ||
		user.Surname != req.Surname ||
		user.Pnr != req.Pnr ||
		user.Email != req.Email ||
		user.Username != req.Username {
		t.Errorf("Login() returned %+v, want the registered identity fields", user)
	}
}
