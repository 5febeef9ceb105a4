package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

var _ Store = (*PGStore)(nil)

// PGStore implements Store using PostgreSQL. Uniqueness is enforced by the
// unique constraints on identities(username) and identities(account_number),
// so the duplicate check and the insert are one atomic statement.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) FindByLogin(ctx context.Context, username, accountNumber string) (*Identity, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, username, account_number, password_hash, role, created_at
		 from identities where username=$1 and account_number=$2`,
		username, accountNumber)
	var identity Identity
	if err := row.Scan(&identity.ID, &identity.Username, &identity.AccountNumber,
		&identity.PasswordHash, &identity.Role, &identity.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &identity, nil
}

func (s *PGStore) Exists(ctx context.Context, username, accountNumber string) (bool, error) {
	row := s.db.QueryRowContext(ctx,
		`select exists(select 1 from identities where username=$1 or account_number=$2)`,
		username, accountNumber)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *PGStore) Insert(ctx context.Context, identity *Identity) error {
	_, err := s.db.ExecContext(ctx,
		`insert into identities(id, username, account_number, password_hash, role, created_at)
		 values($1,$2,$3,$4,$5,$6)`,
		identity.ID, identity.Username, identity.AccountNumber,
		identity.PasswordHash, identity.Role, identity.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateIdentity
		}
		return err
	}
	return nil
}
