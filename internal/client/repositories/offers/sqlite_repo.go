package offers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.SkillOffer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, skill, user_name, description, category
		FROM offers
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	result := make([]models.SkillOffer, 0)
	for rows.Next() {
		var o models.SkillOffer
		if err := rows.Scan(&o.ID, &o.Skill, &o.User, &o.Description, &o.Category); err != nil {
			return nil, fmt.Errorf("failed to scan offer row: %w", err)
		}
		result = append(result, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate offer rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*models.SkillOffer, error) {
	var o models.SkillOffer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, skill, user_name, description, category
		FROM offers
		WHERE id = ?
	`, id).Scan(&o.ID, &o.Skill, &o.User, &o.Description, &o.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get offer[%s]: %w", id, err)
	}
	return &o, nil
}

func (r *SQLiteRepository) insert(ctx context.Context, o models.SkillOffer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO offers (id, skill, user_name, description, category)
		VALUES (?, ?, ?, ?, ?)
	`, o.ID, o.Skill, o.User, o.Description, o.Category)
	if err != nil {
		return fmt.Errorf("failed to insert offer[%s]: %w", o.ID, err)
	}
	return nil
}
