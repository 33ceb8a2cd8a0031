package domain

import "context"

// ProductRepo is the persistence boundary of the catalog aggregate.
// Every write method runs inside a single transaction: the whole
// multi-row aggregate commits or none of it does.
type ProductRepo interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	// List returns products ordered by product_id ascending, fully
	// hydrated. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]Product, error)
	SearchByName(ctx context.Context, name string) ([]Product, error)
	Save(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) error

	FindItem(ctx context.Context, itemID uint) (*ProductItem, error)
	SaveItem(ctx context.Context, item *ProductItem) error
}

type ReferenceRepo interface {
	Categories(ctx context.Context) ([]Category, error)
	Genders(ctx context.Context) ([]Gender, error)
}
