// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alcho-id/alcho-backend/internal/config"
	"github.com/alcho-id/alcho-backend/internal/domain/catalog"
)

// ErrProductNotFound is returned when an add request names a product code
// or pack label that does not exist in the catalog.
var ErrProductNotFound = fmt.Errorf("product or variant not found in catalog")

// Service persists session carts in Redis. It is a thin layer over the pure
// Cart type: load, apply one core operation, save. The core never sees
// Redis or the session id.
type Service struct {
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new cart service.
func NewService(redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		redisClient: redisClient,
		config:      cfg,
	}
}

// sessionCart is the Redis representation of one session's cart.
type sessionCart struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AddToCartRequest represents an add-to-cart request.
type AddToCartRequest struct {
	ProductCode string `json:"product_code" binding:"required"`
	PackLabel   string `json:"pack_label" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest represents a quantity update. Zero removes the item.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

// CartResponse represents a session cart with derived totals.
type CartResponse struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Total     int64      `json:"total"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// GetCart retrieves the cart for a session, empty if none exists yet.
func (s *Service) GetCart(ctx context.Context, sessionID string) (*CartResponse, error) {
	sc, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.response(sc), nil
}

// AddToCart resolves the requested variant against the catalog and adds it
// to the session cart, merging with an existing line item when present.
func (s *Service) AddToCart(ctx context.Context, sessionID string, req *AddToCartRequest) (*CartResponse, error) {
	product, ok := catalog.FindProduct(req.ProductCode)
	if !ok {
		return nil, ErrProductNotFound
	}
	variant, ok := product.Variant(req.PackLabel)
	if !ok {
		return nil, ErrProductNotFound
	}

	sc, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c := Restore(sc.Items)
	if err := c.AddItem(product, variant, req.Quantity); err != nil {
		return nil, err
	}
	sc.Items = c.Items()

	if err := s.save(ctx, sc); err != nil {
		return nil, err
	}
	return s.response(sc), nil
}

// UpdateCartItem sets the quantity of a line item; zero or below removes
// it. A missing line item is left alone, matching the in-memory store.
func (s *Service) UpdateCartItem(ctx context.Context, sessionID, productCode, packLabel string, quantity int) (*CartResponse, error) {
	sc, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c := Restore(sc.Items)
	c.UpdateQuantity(productCode, packLabel, quantity)
	sc.Items = c.Items()

	if err := s.save(ctx, sc); err != nil {
		return nil, err
	}
	return s.response(sc), nil
}

// RemoveFromCart deletes a line item from the session cart.
func (s *Service) RemoveFromCart(ctx context.Context, sessionID, productCode, packLabel string) (*CartResponse, error) {
	return s.UpdateCartItem(ctx, sessionID, productCode, packLabel, 0)
}

// ClearCart removes the whole session cart.
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	return s.redisClient.Del(ctx, s.key(sessionID)).Err()
}

func (s *Service) key(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

func (s *Service) load(ctx context.Context, sessionID string) (*sessionCart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for cart")
	}

	data, err := s.redisClient.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		now := time.Now().UTC()
		return &sessionCart{
			SessionID: sessionID,
			Items:     []LineItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load session cart: %w", err)
	}

	var sc sessionCart
	if err := json.Unmarshal([]byte(data), &sc); err != nil {
		return nil, fmt.Errorf("failed to decode session cart: %w", err)
	}
	return &sc, nil
}

func (s *Service) save(ctx context.Context, sc *sessionCart) error {
	sc.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("failed to encode session cart: %w", err)
	}

	return s.redisClient.Set(ctx, s.key(sc.SessionID), data, s.config.Cart.SessionTTL).Err()
}

func (s *Service) response(sc *sessionCart) *CartResponse {
	c := Restore(sc.Items)
	return &CartResponse{
		SessionID: sc.SessionID,
		Items:     c.Items(),
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
		UpdatedAt: sc.UpdatedAt,
	}
}
