package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/hirebase/hirebase-go/internal/model"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("username or email already exists")
)

// UserRepository is the credential store: person rows holding identity plus a
// hashed credential.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `person_id, name, surname, pnr, email, username, password, role_id`

// Create inserts a new person and sets the generated id on the user struct.
// Uniqueness of username and email is arbitrated by the database; a violation
// surfaces as ErrDuplicateUser, never a crash.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO person (name, surname, pnr, email, username, password, role_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		user.Name, user.Surname, user.Pnr, user.Email, user.Username, user.PasswordHash, user.RoleID,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateUser
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.PersonID = id
	return nil
}

// GetByUsername retrieves a person by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM person WHERE username = ?`, username)
}

// GetByEmail retrieves a person by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM person WHERE email = ?`, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.PersonID, &user.Name, &user.Surname, &user.Pnr,
		&user.Email, &user.Username, &user.PasswordHash, &user.RoleID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// isDuplicateEntry reports whether err is a MySQL duplicate-key error (1062).
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
