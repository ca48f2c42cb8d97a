package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/salesmatch/internal/common"
	"github.com/dmitrijs2005/salesmatch/internal/dbx"
	"github.com/dmitrijs2005/salesmatch/internal/models"
	"github.com/dmitrijs2005/salesmatch/internal/server/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const accountColumns = "id, name, industry, revenue, employees, location, match_score, status"

// PostgresRepository stores the dataset in the accounts table. The table is
// reseeded on startup and on every Reset, so nothing outlives a session.
type PostgresRepository struct {
	db   *sql.DB
	seed []models.Account
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db *sql.DB, seed []models.Account) *PostgresRepository {
	return &PostgresRepository{db: db, seed: slices.Clone(seed)}
}

// OpenPostgres connects with the pgx driver, applies migrations and loads
// the seed dataset.
func OpenPostgres(ctx context.Context, dsn string, seed []models.Account) (*PostgresRepository, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	r := NewPostgresRepository(db, seed)
	if err := r.Reset(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		a      models.Account
		status string
	)
	if err := row.Scan(&a.ID, &a.Name, &a.Industry, &a.Revenue, &a.Employees, &a.Location, &a.MatchScore, &status); err != nil {
		return models.Account{}, err
	}
	s, err := models.ParseStatus(status)
	if err != nil {
		return models.Account{}, fmt.Errorf("account %d: %w", a.ID, err)
	}
	a.Status = s
	return a, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]models.Account, 0, len(r.seed))
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (models.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, fmt.Errorf("account %d: %w", id, common.ErrNotFound)
		}
		return models.Account{}, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, status models.Status) (models.Account, error) {
	if !status.Valid() {
		return models.Account{}, fmt.Errorf("%w: %q", common.ErrInvalidStatus, status)
	}

	row := r.db.QueryRowContext(ctx,
		`UPDATE accounts SET status = $2 WHERE id = $1 RETURNING `+accountColumns,
		id, string(status))
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, fmt.Errorf("account %d: %w", id, common.ErrNotFound)
		}
		return models.Account{}, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

// Reset replaces the table contents with the seed inside one transaction.
func (r *PostgresRepository) Reset(ctx context.Context) error {
	err := dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.Execer) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
			return err
		}
		return dbx.ExecEach(ctx, tx,
			`INSERT INTO accounts (id, position, name, industry, revenue, employees, location, match_score, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			len(r.seed), func(i int) []any {
				a := r.seed[i]
				return []any{a.ID, i, a.Name, a.Industry, a.Revenue, a.Employees, a.Location, a.MatchScore, string(a.Status)}
			})
	})
	if err != nil {
		return fmt.Errorf("reset error: %w", err)
	}
	return nil
}
