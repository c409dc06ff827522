package repositories

import (
	"context"
	"fmt"

	"creditcall/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreatorRepository resolves creators and maintains their analytics summary.
type CreatorRepository interface {
	Create(ctx context.Context, creator *models.Creator) error
	GetByID(ctx context.Context, id string) (*models.Creator, error)
	GetByHandle(ctx context.Context, handle string) (*models.Creator, error)
	UpsertSummary(ctx context.Context, summary *models.CreatorSummary) error
	GetSummary(ctx context.Context, creatorID string) (*models.CreatorSummary, error)
}

type creatorRepository struct {
	db *gorm.DB
}

func NewCreatorRepository(db *gorm.DB) CreatorRepository {
	return &creatorRepository{db: db}
}

func (r *creatorRepository) Create(ctx context.Context, creator *models.Creator) error {
	if err := r.db.WithContext(ctx).Create(creator).Error; err != nil {
		return fmt.Errorf("failed to create creator: %w", err)
	}
	return nil
}

func (r *creatorRepository) GetByID(ctx context.Context, id string) (*models.Creator, error) {
	var creator models.Creator
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&creator).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCreatorNotFound
		}
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}
	return &creator, nil
}

func (r *creatorRepository) GetByHandle(ctx context.Context, handle string) (*models.Creator, error) {
	var creator models.Creator
	if err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&creator).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCreatorNotFound
		}
		return nil, fmt.Errorf("failed to get creator by handle: %w", err)
	}
	return &creator, nil
}

func (r *creatorRepository) UpsertSummary(ctx context.Context, summary *models.CreatorSummary) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "creator_id"}},
			UpdateAll: true,
		}).
		Create(summary).Error
	if err != nil {
		return fmt.Errorf("failed to upsert creator summary: %w", err)
	}
	return nil
}

func (r *creatorRepository) GetSummary(ctx context.Context, creatorID string) (*models.CreatorSummary, error) {
	var summary models.CreatorSummary
	if err := r.db.WithContext(ctx).Where("creator_id = ?", creatorID).First(&summary).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCreatorNotFound
		}
		return nil, fmt.Errorf("failed to get creator summary: %w", err)
	}
	return &summary, nil
}
