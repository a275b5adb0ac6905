package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridquest/internal/gamedata"
)

// onShopTile reports whether the player stands on the shop in a variant that has one.
func (e *Engine) onShopTile(s *State) bool {
	return e.variant.ShopEnabled && e.grid.IsShop(s.Player.X, s.Player.Y)
}

// toggleShop opens or closes the shop view while standing on the shop tile.
func (e *Engine) toggleShop(s *State) {
	if s.Mode != ModeExplore || !e.onShopTile(s) {
		return
	}

	s.ShopOpen = !s.ShopOpen
	if s.ShopOpen {
		s.Message = "Welcome to the shop! Click 'Buy Potion' to purchase."
	} else {
		s.Message = "You close the shop."
	}
}

// buyPotion trades gold for a potion. Without enough gold only the message changes.
func (e *Engine) buyPotion(ctx context.Context, s *State) {
	if s.Mode != ModeExplore || !s.ShopOpen || !e.onShopTile(s) {
		return
	}

	cost := e.variant.PotionCost
	bought := s.Player.Gold >= cost
	if bought {
		s.Player.Gold -= cost
		s.Player.AddItem(gamedata.ItemPotion, 1)
		s.Message = "You bought a potion!"
	} else {
		s.Message = "Not enough gold!"
	}

	_, span := e.tracer.Start(ctx, "shop.buy")
	span.SetAttributes(
		attribute.Bool("bought", bought),
		attribute.Int("cost", cost),
		attribute.Int("gold_remaining", s.Player.Gold),
	)
	span.End()
}
