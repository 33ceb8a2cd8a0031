package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/threadmill/catalog/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

// Create persists the whole aggregate in one transaction. GORM walks
// the association tree, so product, items, sizes and stock either all
// commit or all roll back.
func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(p).Error
	})
}

func (r *ProductRepo) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var p domain.Product
	if err := hydrate(r.db.WithContext(ctx)).First(&p, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) List(ctx context.Context, limit int) ([]domain.Product, error) {
	var list []domain.Product
	q := hydrate(r.db.WithContext(ctx)).Order("product_id asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ProductRepo) SearchByName(ctx context.Context, name string) ([]domain.Product, error) {
	var list []domain.Product
	like := "%" + name + "%"
	if err := hydrate(r.db.WithContext(ctx)).
		Where("LOWER(product_name) LIKE LOWER(?)", like).
		Order("product_id asc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Save writes the patched aggregate back, children included, within a
// single transaction.
func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
	})
}

// Delete cascades through the ownership tree bottom-up so no orphan
// size or stock row survives the product.
func (r *ProductRepo) Delete(ctx context.Context, id uint) error {
	var p domain.Product
	if err := hydrate(r.db.WithContext(ctx)).First(&p, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	itemIDs := make([]uint, 0, len(p.Items))
	sizeIDs := []uint{}
	for _, it := range p.Items {
		itemIDs = append(itemIDs, it.ItemID)
		for _, sz := range it.Sizes {
			sizeIDs = append(sizeIDs, sz.SizeID)
		}
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(sizeIDs) > 0 {
			if err := tx.Where("size_id IN ?", sizeIDs).Delete(&domain.Stock{}).Error; err != nil {
				return err
			}
			if err := tx.Where("size_id IN ?", sizeIDs).Delete(&domain.Size{}).Error; err != nil {
				return err
			}
		}
		if len(itemIDs) > 0 {
			if err := tx.Where("item_id IN ?", itemIDs).Delete(&domain.ProductItem{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&domain.Product{}, "product_id = ?", id).Error
	})
}

func (r *ProductRepo) FindItem(ctx context.Context, itemID uint) (*domain.ProductItem, error) {
	var item domain.ProductItem
	if err := r.db.WithContext(ctx).First(&item, "item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ProductRepo) SaveItem(ctx context.Context, item *domain.ProductItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// hydrate preloads the full ownership tree in a stable order.
func hydrate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("item_id asc") }).
		Preload("Items.Sizes", func(db *gorm.DB) *gorm.DB { return db.Order("size_id asc") }).
		Preload("Items.Sizes.Stock")
}
