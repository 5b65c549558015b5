package postgres

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/nexushr/hr-management/internal/auth"
)

type credentialRow struct {
	ID                 string `db:"id"`
	Email              string `db:"email"`
	PasswordHash       string `db:"password_hash"`
	AccessLevel        string `db:"access_level"`
	Status             string `db:"status"`
	MustChangePassword bool   `db:"must_change_password"`
}

// CredentialRepository reads login credentials straight off the employees
// table with sqlx; the login path has no use for the full domain model.
type CredentialRepository struct {
	db *sqlx.DB
}

func NewCredentialRepository(db *sqlx.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) GetCredentials(email string) (*auth.Credentials, error) {
	var row credentialRow
	query := `
SELECT id, email, password_hash, access_level, status, must_change_password
FROM employees
WHERE LOWER(email) = LOWER($1)
`
	if err := r.db.Get(&row, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	return &auth.Credentials{
		UserID:             row.ID,
		Email:              row.Email,
		PasswordHash:       row.PasswordHash,
		AccessLevel:        row.AccessLevel,
		Status:             row.Status,
		MustChangePassword: row.MustChangePassword,
	}, nil
}
