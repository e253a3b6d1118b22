package pos

import (
	"context"

	"spice-pos/internal/domain"
)

// MenuItemDraft carries the caller-supplied fields for a new menu item.
// The engine assigns the id.
type MenuItemDraft struct {
	Name     string
	Price    int
	Image    string
	Category string
}

// MenuItemUpdate is a partial update; nil fields are left untouched.
type MenuItemUpdate struct {
	Name     *string
	Price    *int
	Image    *string
	Category *string
}

// Menu returns a copy of the current catalog.
func (e *Engine) Menu() []domain.MenuItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := make([]domain.MenuItem, len(e.menu))
	copy(items, e.menu)
	return items
}

// AddMenuItem appends a new catalog item with a fresh id and returns it.
func (e *Engine) AddMenuItem(ctx context.Context, draft MenuItemDraft) domain.MenuItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	item := domain.MenuItem{
		ID:       e.newID(),
		Name:     draft.Name,
		Price:    draft.Price,
		Image:    draft.Image,
		Category: draft.Category,
	}
	e.menu = append(e.menu, item)
	e.persist(ctx)
	return item
}

// UpdateMenuItem applies the present fields of update to the matching
// item. Returns the updated item, or false if the id is unknown.
func (e *Engine) UpdateMenuItem(ctx context.Context, id string, update MenuItemUpdate) (domain.MenuItem, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.menu {
		if e.menu[i].ID != id {
			continue
		}
		if update.Name != nil {
			e.menu[i].Name = *update.Name
		}
		if update.Price != nil {
			e.menu[i].Price = *update.Price
		}
		if update.Image != nil {
			e.menu[i].Image = *update.Image
		}
		if update.Category != nil {
			e.menu[i].Category = *update.Category
		}
		e.persist(ctx)
		return e.menu[i], true
	}

	return domain.MenuItem{}, false
}

// DeleteMenuItem removes the matching item. Cart lines and past sales
// hold snapshots, so deleting an item never touches them. Returns false
// if the id is unknown.
func (e *Engine) DeleteMenuItem(ctx context.Context, id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.menu {
		if e.menu[i].ID == id {
			e.menu = append(e.menu[:i], e.menu[i+1:]...)
			e.persist(ctx)
			return true
		}
	}

	return false
}
