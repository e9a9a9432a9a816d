package offers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/skillswap/internal/client/migrations"
	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/dbx"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded catalog schema to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Seed inserts offers in a single transaction, preserving their order.
// A catalog that already has rows is left as it is.
func Seed(ctx context.Context, db *sql.DB, offers []models.SkillOffer) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM offers`).Scan(&n); err != nil {
			return fmt.Errorf("count offers: %w", err)
		}
		if n > 0 {
			return nil
		}

		repo := NewSQLiteRepository(tx)
		for _, o := range offers {
			if err := repo.insert(ctx, o); err != nil {
				return err
			}
		}
		return nil
	})
}

// InitDatabase opens dsn, applies migrations and loads the seed offers.
// The caller owns the returned *sql.DB.
func InitDatabase(ctx context.Context, dsn string, seed []models.SkillOffer) (*sql.DB, error) {
	db, err := dbx.OpenSQLite(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := Seed(ctx, db, seed); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed offers: %w", err)
	}

	return db, nil
}
