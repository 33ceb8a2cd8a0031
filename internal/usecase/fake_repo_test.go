package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/threadmill/catalog/internal/domain"
)

// fakeProductRepo keeps aggregates in memory and hands out assigned
// identities the way the database would. Copies go in and out so a
// caller mutating a returned product never touches stored state.
type fakeProductRepo struct {
	products map[uint]*domain.Product
	nextID   uint
}

func newFakeRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*domain.Product{}, nextID: 1}
}

func (f *fakeProductRepo) assign() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeProductRepo) Create(_ context.Context, p *domain.Product) error {
	p.ProductID = f.assign()
	for i := range p.Items {
		p.Items[i].ItemID = f.assign()
		p.Items[i].ProductID = p.ProductID
		for j := range p.Items[i].Sizes {
			sz := &p.Items[i].Sizes[j]
			sz.SizeID = f.assign()
			sz.ItemID = p.Items[i].ItemID
			sz.Stock.StockID = f.assign()
			sz.Stock.SizeID = sz.SizeID
		}
	}
	f.products[p.ProductID] = clone(p)
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uint) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(p), nil
}

func (f *fakeProductRepo) List(_ context.Context, limit int) ([]domain.Product, error) {
	ids := make([]uint, 0, len(f.products))
	for id := range f.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []domain.Product
	for _, id := range ids {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, *clone(f.products[id]))
	}
	return out, nil
}

func (f *fakeProductRepo) SearchByName(_ context.Context, name string) ([]domain.Product, error) {
	all, _ := f.List(context.Background(), 0)
	var out []domain.Product
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.ProductName), strings.ToLower(name)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Save(_ context.Context, p *domain.Product) error {
	if _, ok := f.products[p.ProductID]; !ok {
		return domain.ErrNotFound
	}
	f.products[p.ProductID] = clone(p)
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) FindItem(_ context.Context, itemID uint) (*domain.ProductItem, error) {
	for _, p := range f.products {
		for i := range p.Items {
			if p.Items[i].ItemID == itemID {
				it := p.Items[i]
				return &it, nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProductRepo) SaveItem(_ context.Context, item *domain.ProductItem) error {
	for _, p := range f.products {
		for i := range p.Items {
			if p.Items[i].ItemID == item.ItemID {
				item.Sizes = p.Items[i].Sizes
				p.Items[i] = *item
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

func clone(p *domain.Product) *domain.Product {
	cp := *p
	cp.Items = make([]domain.ProductItem, len(p.Items))
	for i, it := range p.Items {
		ci := it
		ci.Sizes = make([]domain.Size, len(it.Sizes))
		copy(ci.Sizes, it.Sizes)
		cp.Items[i] = ci
	}
	return &cp
}
