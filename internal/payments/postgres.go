package payments

import (
	"context"
	"database/sql"
	"errors"
)

var _ Repository = (*PGRepo)(nil)

// PGRepo implements Repository using PostgreSQL. The status transition is a
// single conditional update, so the compare-and-swap happens inside the
// database and concurrent transitions cannot both succeed.
type PGRepo struct {
	db *sql.DB
}

func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{db: db}
}

const paymentColumns = `id, amount, currency, provider, account_info, swift_code, status, created_at, owner_id, owner_username`

func (r *PGRepo) Insert(ctx context.Context, p *Payment) error {
	_, err := r.db.ExecContext(ctx,
		`insert into payments(`+paymentColumns+`)
		 values($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		p.ID, int64(p.Amount), p.Currency, p.Provider, p.AccountInfo,
		p.SwiftCode, p.Status, p.CreatedAt, p.OwnerID, p.OwnerUsername)
	return err
}

func (r *PGRepo) Get(ctx context.Context, id string) (*Payment, error) {
	row := r.db.QueryRowContext(ctx,
		`select `+paymentColumns+` from payments where id=$1`, id)
	return scanPayment(row)
}

func (r *PGRepo) ListAll(ctx context.Context) ([]Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`select `+paymentColumns+` from payments order by created_at asc, id asc`)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`select `+paymentColumns+` from payments where owner_id=$1 order by created_at asc, id asc`,
		ownerID)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

func (r *PGRepo) TransitionStatus(ctx context.Context, id string, from, to Status) (*Payment, error) {
	row := r.db.QueryRowContext(ctx,
		`update payments set status=$1 where id=$2 and status=$3
		 returning `+paymentColumns, to, id, from)
	p, err := scanPayment(row)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	// Zero rows updated: distinguish a missing payment from a state
	// precondition failure.
	var exists bool
	if scanErr := r.db.QueryRowContext(ctx,
		`select exists(select 1 from payments where id=$1)`, id).Scan(&exists); scanErr != nil {
		return nil, scanErr
	}
	if !exists {
		return nil, ErrNotFound
	}
	return nil, ErrInvalidTransition
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayment(row rowScanner) (*Payment, error) {
	var (
		p      Payment
		amount int64
	)
	err := row.Scan(&p.ID, &amount, &p.Currency, &p.Provider, &p.AccountInfo,
		&p.SwiftCode, &p.Status, &p.CreatedAt, &p.OwnerID, &p.OwnerUsername)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Amount = Amount(amount)
	return &p, nil
}

func collectPayments(rows *sql.Rows) ([]Payment, error) {
	defer rows.Close()
	var out []Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}
