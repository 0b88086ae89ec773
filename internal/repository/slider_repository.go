package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaheencodecrafters/marketplace-service/internal/domain"
)

// SliderRepository encapsulates slider persistence.
type SliderRepository interface {
	Create(ctx context.Context, slider *domain.Slider) error
	GetByID(ctx context.Context, id string) (*domain.Slider, error)
	List(ctx context.Context) ([]domain.Slider, error)
	Update(ctx context.Context, slider *domain.Slider) error
	Delete(ctx context.Context, id string) error
}

type sliderRepository struct {
	pool *pgxpool.Pool
}

// NewSliderRepository instantiates repository.
func NewSliderRepository(pool *pgxpool.Pool) SliderRepository {
	return &sliderRepository{pool: pool}
}

func (r *sliderRepository) Create(ctx context.Context, slider *domain.Slider) error {
	const query = `
        INSERT INTO sliders (image_url, asset_id)
        VALUES ($1, $2)
        RETURNING id`
	return r.pool.QueryRow(ctx, query, slider.ImageURL, slider.AssetID).Scan(&slider.ID)
}

func (r *sliderRepository) GetByID(ctx context.Context, id string) (*domain.Slider, error) {
	const query = `SELECT id, image_url, asset_id FROM sliders WHERE id=$1`

	var slider domain.Slider
	if err := r.pool.QueryRow(ctx, query, id).Scan(&slider.ID, &slider.ImageURL, &slider.AssetID); err != nil {
		return nil, err
	}
	return &slider, nil
}

func (r *sliderRepository) List(ctx context.Context) ([]domain.Slider, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, image_url, asset_id FROM sliders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sliders := make([]domain.Slider, 0)
	for rows.Next() {
		var slider domain.Slider
		if err := rows.Scan(&slider.ID, &slider.ImageURL, &slider.AssetID); err != nil {
			return nil, err
		}
		sliders = append(sliders, slider)
	}
	return sliders, rows.Err()
}

func (r *sliderRepository) Update(ctx context.Context, slider *domain.Slider) error {
	const query = `UPDATE sliders SET image_url=$1, asset_id=$2 WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, slider.ImageURL, slider.AssetID, slider.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sliderRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sliders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
