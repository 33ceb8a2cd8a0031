package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/threadmill/catalog/internal/domain"
)

type ProductUC struct {
	Products domain.ProductRepo
}

// Create validates the whole submission up front, then materializes
// the product with all of its items, sizes and opening stock in one
// transaction. Nothing is written when validation rejects.
func (uc *ProductUC) Create(ctx context.Context, sub *domain.ProductSubmission) (*domain.Product, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}
	p := &domain.Product{
		ProductName: strings.TrimSpace(sub.ProductName),
		Description: sub.Description,
		CategoryID:  sub.CategoryID,
		GenderID:    sub.GenderID,
	}
	for _, item := range sub.Items {
		it := domain.ProductItem{Color: item.Color, ImageURL: item.ImageURL}
		for _, sz := range item.Sizes {
			it.Sizes = append(it.Sizes, domain.Size{
				Size:  sz.Size,
				Price: sz.Price,
				Stock: domain.Stock{Stock: sz.Stock},
			})
		}
		p.Items = append(p.Items, it)
	}
	if err := uc.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p.Decorate(), nil
}

// AddImage attaches or replaces the image reference on an existing
// item.
func (uc *ProductUC) AddImage(ctx context.Context, itemID uint, imageURL string) error {
	if strings.TrimSpace(imageURL) == "" {
		return domain.Invalid("image_url", "must not be empty")
	}
	item, err := uc.Products.FindItem(ctx, itemID)
	if err != nil {
		return err
	}
	item.ImageURL = imageURL
	return uc.Products.SaveItem(ctx, item)
}

func (uc *ProductUC) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	p, err := uc.Products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.Decorate(), nil
}

// List returns every product, or the first n when limit > 0, ordered
// by identity so paging stays stable across calls.
func (uc *ProductUC) List(ctx context.Context, limit int) ([]domain.Product, error) {
	list, err := uc.Products.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Decorate()
	}
	return list, nil
}

// Search matches product names case-insensitively by substring. An
// empty result is not an error.
func (uc *ProductUC) Search(ctx context.Context, name string) ([]domain.Product, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, domain.Invalid("name", "must not be empty")
	}
	list, err := uc.Products.SearchByName(ctx, n)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Decorate()
	}
	return list, nil
}

// Update fetches the aggregate, applies only the fields present in the
// patch, re-validates the invariants on the result and persists it in
// one transaction.
func (uc *ProductUC) Update(ctx context.Context, id uint, patch *domain.ProductPatch) (*domain.Product, error) {
	p, err := uc.Products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyPatch(p, patch); err != nil {
		return nil, err
	}
	if err := validateAggregate(p); err != nil {
		return nil, err
	}
	if err := uc.Products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p.Decorate(), nil
}

// Delete cascades through items, sizes and stock. The deleted identity
// comes back as confirmation.
func (uc *ProductUC) Delete(ctx context.Context, id uint) (uint, error) {
	if _, err := uc.Products.FindByID(ctx, id); err != nil {
		return 0, err
	}
	if err := uc.Products.Delete(ctx, id); err != nil {
		return 0, err
	}
	return id, nil
}

func applyPatch(p *domain.Product, patch *domain.ProductPatch) error {
	if patch.ProductName != nil {
		p.ProductName = *patch.ProductName
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.GenderID != nil {
		p.GenderID = *patch.GenderID
	}
	for i, ip := range patch.Items {
		item := findItem(p, ip.ItemID)
		if item == nil {
			return domain.Invalid(fmt.Sprintf("product_items[%d].item_id", i), "no such item on this product")
		}
		if ip.Color != nil {
			item.Color = *ip.Color
		}
		if ip.ImageURL != nil {
			item.ImageURL = *ip.ImageURL
		}
	}
	for i, sp := range patch.Sizes {
		sz := findSize(p, sp.SizeID)
		if sz == nil {
			return domain.Invalid(fmt.Sprintf("sizes[%d].size_id", i), "no such size on this product")
		}
		if sp.Size != nil {
			sz.Size = *sp.Size
		}
		if sp.Price != nil {
			sz.Price = *sp.Price
		}
		if sp.Stock != nil {
			sz.Stock.Stock = *sp.Stock
		}
	}
	return nil
}

func findItem(p *domain.Product, itemID uint) *domain.ProductItem {
	for i := range p.Items {
		if p.Items[i].ItemID == itemID {
			return &p.Items[i]
		}
	}
	return nil
}

func findSize(p *domain.Product, sizeID uint) *domain.Size {
	for i := range p.Items {
		for j := range p.Items[i].Sizes {
			if p.Items[i].Sizes[j].SizeID == sizeID {
				return &p.Items[i].Sizes[j]
			}
		}
	}
	return nil
}
