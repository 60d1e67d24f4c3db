package memory

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"storefront/domain/catalog"
	"storefront/domain/shared"

	"gopkg.in/yaml.v3"
)

// ProductRepository is an in-memory catalog, usually seeded from YAML.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]catalog.Product
	order    []string
}

var _ catalog.Repository = (*ProductRepository)(nil)

func NewProductRepository(products ...catalog.Product) *ProductRepository {
	r := &ProductRepository{products: make(map[string]catalog.Product)}
	for _, p := range products {
		r.put(p)
	}
	return r
}

func (r *ProductRepository) put(p catalog.Product) {
	if _, ok := r.products[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}
	r.products[p.ID] = p.Clone()
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return catalog.Product{}, shared.NewNotFoundError("product", "product not found: "+id, catalog.ErrProductNotFound)
	}
	return p.Clone(), nil
}

// List returns matching products in insertion order.
func (r *ProductRepository) List(ctx context.Context, spec shared.Specification[catalog.Product]) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Product, 0, len(r.order))
	for _, id := range r.order {
		p := r.products[id]
		if shared.Matches(ctx, spec, p) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (r *ProductRepository) Save(ctx context.Context, p catalog.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(p)
	return nil
}

// seedFile is the catalog seed document
type seedFile struct {
	Products []catalog.Product `yaml:"products"`
}

// LoadSeed reads a YAML catalog seed. Products are returned sorted by id so
// repeated loads are deterministic.
func LoadSeed(path string) ([]catalog.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates a YAML catalog seed.
func ParseSeed(data []byte) ([]catalog.Product, error) {
	var doc seedFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	seen := make(map[string]bool, len(doc.Products))
	for i, p := range doc.Products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("catalog seed product %d: %w", i, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("catalog seed: duplicate product id %q", p.ID)
		}
		seen[p.ID] = true
	}
	sort.SliceStable(doc.Products, func(i, j int) bool { return doc.Products[i].ID < doc.Products[j].ID })
	return doc.Products, nil
}
