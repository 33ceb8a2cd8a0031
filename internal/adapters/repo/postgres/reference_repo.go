package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/threadmill/catalog/internal/domain"
)

type ReferenceRepo struct{ db *gorm.DB }

func NewReferenceRepo(db *gorm.DB) *ReferenceRepo { return &ReferenceRepo{db: db} }

func (r *ReferenceRepo) Categories(ctx context.Context) ([]domain.Category, error) {
	var list []domain.Category
	if err := r.db.WithContext(ctx).Order("category_name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ReferenceRepo) Genders(ctx context.Context) ([]domain.Gender, error) {
	var list []domain.Gender
	if err := r.db.WithContext(ctx).Order("gender_name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
