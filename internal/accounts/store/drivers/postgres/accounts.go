package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/procurehub/eproc/internal/accounts/domain"
)

type accountsRepo struct {
	db *sql.DB
}

const accountCols = `id, name, username, title, department, email, role, password_hash, created_at, last_login`

const createAccountQuery = `
INSERT INTO accounts (name, username, title, department, email, role, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + accountCols

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, createAccountQuery,
		a.Name,
		a.Username,
		mapOptionalString(a.Title),
		mapOptionalString(a.Department),
		a.Email,
		a.Role,
		a.PasswordHash,
		time.Now().UTC(),
	)

	created, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapConstraint(err)
	}
	return created, nil
}

const getAccountByIDQuery = `
SELECT ` + accountCols + ` FROM accounts WHERE id = $1`

func (r *accountsRepo) GetAccountByID(ctx context.Context, id int64) (domain.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, getAccountByIDQuery, id))
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

// One lookup serves both email and username logins; the identifier arrives
// already lowercased.
const getAccountByLoginQuery = `
SELECT ` + accountCols + ` FROM accounts WHERE email = $1 OR username = $1`

func (r *accountsRepo) GetAccountByLogin(ctx context.Context, identifier string) (domain.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, getAccountByLoginQuery, identifier))
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

// Fixed statement, presence flags as parameters. No identifier lists are
// ever concatenated into the SQL.
const updateProfileQuery = `
UPDATE accounts SET
    name       = $1,
    title      = CASE WHEN $2 THEN $3 ELSE title END,
    department = CASE WHEN $4 THEN $5 ELSE department END,
    role       = CASE WHEN $6 THEN $7 ELSE role END
WHERE id = $8
RETURNING ` + accountCols

func (r *accountsRepo) UpdateProfile(ctx context.Context, id int64, upd domain.ProfileUpdate) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, updateProfileQuery,
		upd.Name,
		upd.Title.Set, mapOptionalString(upd.Title.Value),
		upd.Department.Set, mapOptionalString(upd.Department.Value),
		upd.Role.Set, roleValue(upd.Role),
		id,
	)

	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

const touchLastLoginQuery = `
UPDATE accounts SET last_login = $1 WHERE id = $2`

func (r *accountsRepo) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, touchLastLoginQuery, time.Now().UTC(), id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var (
		a         domain.Account
		title     sql.NullString
		dept      sql.NullString
		lastLogin sql.NullTime
	)
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Username,
		&title,
		&dept,
		&a.Email,
		&a.Role,
		&a.PasswordHash,
		&a.CreatedAt,
		&lastLogin,
	)
	if err != nil {
		return domain.Account{}, err
	}

	a.Title = mapNullStringPtr(title)
	a.Department = mapNullStringPtr(dept)
	a.LastLogin = mapNullTimePtr(lastLogin)
	return a, nil
}

// roleValue folds an explicit null into the empty string; the role column
// is NOT NULL so the schema default stays meaningful.
func roleValue(p domain.Patch) string {
	if p.Value == nil {
		return ""
	}
	return *p.Value
}
