package domain

import "context"

// PageRepository persists generated pages.
type PageRepository interface {
	// FindOne returns the page a user already has for businessName, or ErrNotFound.
	FindOne(ctx context.Context, userID, businessName string) (*Page, error)
	// Create inserts page and fills its ID and timestamps.
	Create(ctx context.Context, page *Page) error
	GetByID(ctx context.Context, id string) (*Page, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]Page, error)
}
