package pos

import (
	"context"
	"sync"
	"time"

	"spice-pos/internal/domain"
	"spice-pos/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine is the order/catalog/sales state machine behind the till. It
// exclusively owns the menu catalog, the active cart and the sales
// ledger; HTTP handlers only read snapshots and call the mutation
// methods. All methods are safe for concurrent use: the collections are
// mutated via read-then-write sequences that must run under the lock.
type Engine struct {
	mu     sync.Mutex
	menu   []domain.MenuItem
	cart   []domain.CartLine
	sales  []domain.Sale
	store  store.Store
	logger *zap.Logger

	// Overridable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// NewEngine builds an engine from persisted state. A missing or
// unreadable state document falls back to the default menu and an empty
// ledger; losing history is cheaper than an unusable till.
func NewEngine(ctx context.Context, st store.Store, logger *zap.Logger) *Engine {
	e := &Engine{
		store:  st,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}

	state, err := st.Load(ctx)
	if err != nil {
		if err != store.ErrStateNotFound {
			logger.Warn("Failed to load persisted state, starting with defaults", zap.Error(err))
		}
		e.menu = domain.DefaultMenu()
		return e
	}

	e.menu = state.MenuItems
	e.sales = state.Sales
	logger.Info("Loaded persisted state",
		zap.Int("menu_items", len(e.menu)),
		zap.Int("sales", len(e.sales)),
	)
	return e
}

// Now reports the engine clock's current time. Receipt previews use it so
// printed timestamps agree with sale timestamps.
func (e *Engine) Now() time.Time {
	return e.now()
}

// persist writes the durable portion of the state. The cart is excluded:
// an in-progress order does not survive a restart. Callers must hold the
// lock. Failures are logged and swallowed so a dead disk never blocks
// taking orders.
func (e *Engine) persist(ctx context.Context) {
	state := &store.State{
		MenuItems: e.menu,
		Sales:     e.sales,
	}
	if err := e.store.Save(ctx, state); err != nil {
		e.logger.Error("Failed to persist state", zap.Error(err))
	}
}
