package usecase

import (
	"fmt"
	"strings"

	"github.com/threadmill/catalog/internal/domain"
)

// All invariant checks live here, at the builder/mutator entry points,
// so a rejected submission names the exact offending field.

func validateSubmission(sub *domain.ProductSubmission) error {
	if strings.TrimSpace(sub.ProductName) == "" {
		return domain.Invalid("product_name", "must not be empty")
	}
	if len(sub.Items) == 0 {
		return domain.Invalid("product_items", "product needs at least one item")
	}
	colors := map[string]struct{}{}
	for i, item := range sub.Items {
		path := fmt.Sprintf("product_items[%d]", i)
		c := strings.ToLower(strings.TrimSpace(item.Color))
		if c == "" {
			return domain.Invalid(path+".color", "must not be empty")
		}
		if _, dup := colors[c]; dup {
			return domain.Invalid(path+".color", "duplicate color "+item.Color)
		}
		colors[c] = struct{}{}
		if len(item.Sizes) == 0 {
			return domain.Invalid(path+".sizes", "item needs at least one size")
		}
		labels := map[string]struct{}{}
		for j, sz := range item.Sizes {
			szPath := fmt.Sprintf("%s.sizes[%d]", path, j)
			l := strings.ToLower(strings.TrimSpace(sz.Size))
			if l == "" {
				return domain.Invalid(szPath+".size", "must not be empty")
			}
			if _, dup := labels[l]; dup {
				return domain.Invalid(szPath+".size", "duplicate size "+sz.Size)
			}
			labels[l] = struct{}{}
			if sz.Price <= 0 {
				return domain.Invalid(szPath+".price", "must be greater than zero")
			}
			if sz.Stock < 0 {
				return domain.Invalid(szPath+".stock", "must not be negative")
			}
		}
	}
	return nil
}

// validateAggregate re-checks the invariants on a hydrated product,
// after a patch has been applied to it.
func validateAggregate(p *domain.Product) error {
	if strings.TrimSpace(p.ProductName) == "" {
		return domain.Invalid("product_name", "must not be empty")
	}
	if len(p.Items) == 0 {
		return domain.Invalid("product_items", "product needs at least one item")
	}
	colors := map[string]struct{}{}
	for i, item := range p.Items {
		path := fmt.Sprintf("product_items[%d]", i)
		c := strings.ToLower(strings.TrimSpace(item.Color))
		if _, dup := colors[c]; dup {
			return domain.Invalid(path+".color", "duplicate color "+item.Color)
		}
		colors[c] = struct{}{}
		if len(item.Sizes) == 0 {
			return domain.Invalid(path+".sizes", "item needs at least one size")
		}
		labels := map[string]struct{}{}
		for j, sz := range item.Sizes {
			szPath := fmt.Sprintf("%s.sizes[%d]", path, j)
			l := strings.ToLower(strings.TrimSpace(sz.Size))
			if _, dup := labels[l]; dup {
				return domain.Invalid(szPath+".size", "duplicate size "+sz.Size)
			}
			labels[l] = struct{}{}
			if sz.Price <= 0 {
				return domain.Invalid(szPath+".price", "must be greater than zero")
			}
			if sz.Stock.Stock < 0 {
				return domain.Invalid(szPath+".stock", "must not be negative")
			}
		}
	}
	return nil
}
