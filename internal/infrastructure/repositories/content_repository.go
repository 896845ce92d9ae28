package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/omxqn/api-application/domain"
)

// ContentRepositoryImpl implements domain.ContentRepository using GORM
type ContentRepositoryImpl struct {
	db *gorm.DB
}

// DBSlider represents the database model for a landing-screen slider
type DBSlider struct {
	ID       uint   `gorm:"primaryKey"`
	ImageURL string `gorm:"size:255"`
	Caption  string `gorm:"size:255"`
	Position int    `gorm:"index"`
}

func (DBSlider) TableName() string { return "sliders" }

// NewContentRepository creates a new content repository
func NewContentRepository(db *gorm.DB) domain.ContentRepository {
	return &ContentRepositoryImpl{db: db}
}

// ListSliders implements domain.ContentRepository
func (r *ContentRepositoryImpl) ListSliders(ctx context.Context) ([]domain.Slider, error) {
	var rows []DBSlider
	err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	sliders := make([]domain.Slider, 0, len(rows))
	for _, row := range rows {
		sliders = append(sliders, domain.Slider{
			ID:       row.ID,
			ImageURL: row.ImageURL,
			Caption:  row.Caption,
			Position: row.Position,
		})
	}
	return sliders, nil
}
