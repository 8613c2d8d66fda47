package sqlite

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
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
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
SELECT ` + accountCols + ` FROM accounts WHERE id = ?`

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
SELECT ` + accountCols + ` FROM accounts WHERE email = ? OR username = ?`

func (r *accountsRepo) GetAccountByLogin(ctx context.Context, identifier string) (domain.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, getAccountByLoginQuery, identifier, identifier))
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

// Fixed statement, presence flags as parameters. No identifier lists are
// ever concatenated into the SQL.
const updateProfileQuery = `
UPDATE accounts SET
    name       = ?,
    title      = CASE WHEN ? THEN ? ELSE title END,
    department = CASE WHEN ? THEN ? ELSE department END,
    role       = CASE WHEN ? THEN ? ELSE role END
WHERE id = ?
RETURNING ` + accountCols

func (r *accountsRepo) UpdateProfile(ctx context.Context, id int64, upd domain.ProfileUpdate) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, updateProfileQuery,
		upd.Name,
		b2i(upd.Title.Set), mapOptionalString(upd.Title.Value),
		b2i(upd.Department.Set), mapOptionalString(upd.Department.Value),
		b2i(upd.Role.Set), roleValue(upd.Role),
		id,
	)

	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

const touchLastLoginQuery = `
UPDATE accounts SET last_login = ? WHERE id = ?`

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

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// roleValue folds an explicit null into the empty string; the role column
// is NOT NULL so the schema default stays meaningful.
func roleValue(p domain.Patch) string {
	if p.Value == nil {
		return ""
	}
	return *p.Value
}
