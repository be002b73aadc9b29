package youtube

import (
	"context"
	"errors"
	"fmt"
)

var ErrUnknownCategory = errors.New("unknown category")

// CategoryLister provides the platform's category ids and display names.
type CategoryLister interface {
	ListCategories(ctx context.Context) (map[string]string, error)
}

// CategoryResolver maps category ids to display names. The category list
// is fetched once, on the first Resolve call, and reused for the rest of
// the run.
type CategoryResolver struct {
	lister CategoryLister
	names  map[string]string
}

func NewCategoryResolver(lister CategoryLister) *CategoryResolver {
	return &CategoryResolver{lister: lister}
}

func (r *CategoryResolver) Resolve(ctx context.Context, id string) (string, error) {
	if r.names == nil {
		names, err := r.lister.ListCategories(ctx)
		if err != nil {
			return "", fmt.Errorf("fetch categories: %w", err)
		}
		if names == nil {
			names = map[string]string{}
		}
		r.names = names
	}

	name, ok := r.names[id]
	if !ok {
		return "", fmt.Errorf("category %s: %w", id, ErrUnknownCategory)
	}

	return name, nil
}
