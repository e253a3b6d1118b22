package pos

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_RepeatedAddsAccumulateIntoOneLine(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("n adds of the same item yield one line with quantity n", prop.ForAll(
		func(adds int) bool {
			if adds < 1 {
				adds = 1
			}
			if adds > 200 {
				adds = 200
			}

			e := newTestEngine(t)
			ctx := context.Background()

			for i := 0; i < adds; i++ {
				if _, ok := e.AddToCart(ctx, "3"); !ok {
					t.Logf("FAIL: add %d rejected", i)
					return false
				}
			}

			cart := e.Cart()
			lines := 0
			for _, line := range cart {
				if line.ID == "3" {
					lines++
					if line.Quantity != adds {
						t.Logf("FAIL: quantity %d after %d adds", line.Quantity, adds)
						return false
					}
				}
			}
			return lines == 1
		},
		gen.IntRange(1, 200),
	))

	properties.TestingRun(t)
}

func TestProperty_CartTotalMatchesManualSum(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("total always equals the sum of price times quantity", prop.ForAll(
		func(quantities []int) bool {
			e := newTestEngine(t)
			ctx := context.Background()

			menu := e.Menu()
			want := 0
			for i, q := range quantities {
				if i >= len(menu) {
					break
				}
				if q < 1 {
					q = 1
				}
				if q > 50 {
					q = 50
				}
				e.AddToCart(ctx, menu[i].ID)
				e.UpdateQuantity(ctx, menu[i].ID, q)
				want += menu[i].Price * q
			}

			if got := e.CartTotal(); got != want {
				t.Logf("FAIL: cart total %d, manual sum %d", got, want)
				return false
			}
			return true
		},
		gen.SliceOf(gen.IntRange(1, 50)),
	))

	properties.TestingRun(t)
}

func TestProperty_NonPositiveQuantityRemovesLine(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("updateQuantity with qty <= 0 removes the line entirely", prop.ForAll(
		func(qty int) bool {
			if qty > 0 {
				qty = -qty
			}

			e := newTestEngine(t)
			ctx := context.Background()

			e.AddToCart(ctx, "4")
			e.UpdateQuantity(ctx, "4", qty)

			for _, line := range e.Cart() {
				if line.ID == "4" {
					t.Logf("FAIL: line survived quantity %d", qty)
					return false
				}
			}
			return true
		},
		gen.IntRange(-100, 0),
	))

	properties.TestingRun(t)
}

func TestProperty_NoStoredLineHasNonPositiveQuantity(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("after any op sequence every line has quantity >= 1", prop.ForAll(
		func(ops []int) bool {
			e := newTestEngine(t)
			ctx := context.Background()
			menu := e.Menu()

			for _, op := range ops {
				id := menu[abs(op)%len(menu)].ID
				switch abs(op) % 4 {
				case 0:
					e.AddToCart(ctx, id)
				case 1:
					e.UpdateQuantity(ctx, id, op%7)
				case 2:
					e.RemoveFromCart(ctx, id)
				case 3:
					e.AddToCart(ctx, id)
					e.UpdateQuantity(ctx, id, abs(op)%7)
				}
			}

			for _, line := range e.Cart() {
				if line.Quantity < 1 {
					t.Logf("FAIL: stored quantity %d for %s", line.Quantity, line.ID)
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
	))

	properties.TestingRun(t)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestUpdateQuantityReplacesNotIncrements(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	e.AddToCart(ctx, "5")
	e.AddToCart(ctx, "5")
	e.UpdateQuantity(ctx, "5", 7)

	cart := e.Cart()
	if len(cart) != 1 || cart[0].Quantity != 7 {
		t.Errorf("expected exact quantity 7, got %+v", cart)
	}
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	e.AddToCart(ctx, "1")
	e.UpdateQuantity(ctx, "missing", 5)

	cart := e.Cart()
	if len(cart) != 1 || cart[0].ID != "1" || cart[0].Quantity != 1 {
		t.Errorf("cart changed by unknown-id update: %+v", cart)
	}
}

func TestAddToCartSnapshotsPriceAtAddTime(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	e.AddToCart(ctx, "1")

	price := 100
	e.UpdateMenuItem(ctx, "1", MenuItemUpdate{Price: &price})

	cart := e.Cart()
	if cart[0].Price != 30 {
		t.Errorf("line price changed retroactively: %d", cart[0].Price)
	}
	if got := e.CartTotal(); got != 30 {
		t.Errorf("total uses live catalog price: %d", got)
	}

	// A fresh add picks up the new price on its own line semantics:
	// same line, so the original snapshot still governs.
	e.AddToCart(ctx, "1")
	if got := e.CartTotal(); got != 60 {
		t.Errorf("increment changed snapshot price: total %d, want 60", got)
	}
}

func TestClearCartUnconditional(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	e.AddToCart(ctx, "1")
	e.AddToCart(ctx, "2")
	e.ClearCart(ctx)

	if len(e.Cart()) != 0 || e.CartTotal() != 0 {
		t.Errorf("cart not emptied")
	}
}

func TestRemoveFromCartAbsentIDIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	e.RemoveFromCart(context.Background(), "42")

	if len(e.Cart()) != 0 {
		t.Errorf("cart should stay empty")
	}
}

func TestAddToCartUnknownItem(t *testing.T) {
	e := newTestEngine(t)

	if _, ok := e.AddToCart(context.Background(), "no-such-item"); ok {
		t.Error("expected add of unknown item to be rejected")
	}
	if len(e.Cart()) != 0 {
		t.Errorf("cart grew on unknown item")
	}
}
