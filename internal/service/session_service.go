package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/auth"
	"github.com/nexusshop/storefront/internal/cart"
	"github.com/nexusshop/storefront/internal/catalog"
	"github.com/nexusshop/storefront/internal/checkout"
	"github.com/nexusshop/storefront/internal/domain"
	"github.com/nexusshop/storefront/internal/events"
	"github.com/nexusshop/storefront/internal/i18n"
	"github.com/nexusshop/storefront/internal/metrics"
	"github.com/nexusshop/storefront/internal/storage"
	"github.com/nexusshop/storefront/pkg/errors"
)

// Session is the state of one shopper, the server-side equivalent of a browser tab
type Session struct {
	ID       string
	Cart     *cart.Store
	Auth     *auth.Store
	Language *i18n.Preference

	mu   sync.Mutex
	flow *checkout.Flow

	// guarded by SessionManager.mu
	lastAccess time.Time
}

// processing reports whether a payment of this session is in flight
func (sess *Session) processing() bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.flow != nil && sess.flow.Processing()
}

// SessionConfig carries the settings shared by every session
type SessionConfig struct {
	Pricing         cart.Pricing
	DefaultLanguage domain.Language
	FlowOptions     []checkout.Option
	// IdleTTL is how long an unused session stays loaded. Zero keeps sessions forever.
	IdleTTL time.Duration
}

// SessionManager loads sessions on first use and runs their operations
type SessionManager struct {
	store     storage.Store
	cfg       SessionConfig
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager creates a manager persisting session records in store
func NewSessionManager(
	store storage.Store,
	cfg SessionConfig,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) *SessionManager {
	return &SessionManager{
		store:     store,
		cfg:       cfg,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
		sessions:  make(map[string]*Session),
	}
}

// Session returns the session with id, rehydrating it from storage on first use
func (s *SessionManager) Session(ctx context.Context, id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sess, ok := s.sessions[id]; ok {
		sess.lastAccess = now
		return sess
	}

	scoped := storage.Scoped(s.store, storage.SessionPrefix(id))
	logger := s.logger.With(zap.String("session_id", id))
	sess := &Session{
		ID:         id,
		Cart:       cart.Load(ctx, scoped, s.cfg.Pricing, logger),
		Auth:       auth.Load(ctx, scoped, logger),
		Language:   i18n.LoadPreference(ctx, scoped, s.cfg.DefaultLanguage, logger),
		lastAccess: now,
	}
	s.sessions[id] = sess
	s.metrics.ActiveSessions.Set(float64(len(s.sessions)))

	logger.Debug("Session loaded", zap.Int("cart_items", sess.Cart.ItemCount()))
	return sess
}

// DefaultTranslator serves requests that carry no session
func (s *SessionManager) DefaultTranslator() i18n.Translator {
	return i18n.NewTranslator(s.cfg.DefaultLanguage)
}

// EvictIdle unloads sessions unused for longer than the idle TTL. Their records stay
// in storage and are read again on the next request. Sessions with a payment in
// flight are kept.
func (s *SessionManager) EvictIdle(now time.Time) int {
	if s.cfg.IdleTTL <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastAccess) <= s.cfg.IdleTTL || sess.processing() {
			continue
		}
		delete(s.sessions, id)
		evicted++
	}
	s.metrics.ActiveSessions.Set(float64(len(s.sessions)))

	if evicted > 0 {
		s.logger.Debug("Evicted idle sessions", zap.Int("evicted", evicted), zap.Int("active", len(s.sessions)))
	}
	return evicted
}

// RunEviction calls EvictIdle every interval until ctx is done
func (s *SessionManager) RunEviction(ctx context.Context, interval time.Duration) {
	if s.cfg.IdleTTL <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.EvictIdle(s.now())
		}
	}
}

// AddItem puts quantity units of a catalog product in the cart
func (s *SessionManager) AddItem(ctx context.Context, sess *Session, productID, size string, quantity int) error {
	if sess.processing() {
		return &errors.ErrPaymentProcessing{}
	}

	product, ok := catalog.ByID(productID)
	if !ok {
		return &errors.ErrNotFound{Resource: "product", ID: productID}
	}
	if !product.HasSize(size) {
		return &errors.ErrValidation{Fields: map[string]string{"size": sess.Language.T("product.selectSize")}}
	}
	if quantity < 1 {
		quantity = 1
	}

	sess.Cart.AddItem(ctx, product, size, quantity)
	s.metrics.CartOperationsTotal.WithLabelValues("add").Inc()
	s.publish(ctx, events.New(events.TypeCartItemAdded, sess.ID, map[string]interface{}{
		"product_id": productID,
		"size":       size,
		"quantity":   quantity,
	}))
	return nil
}

// UpdateQuantity sets the quantity of a line already in the cart. Zero or less removes it.
func (s *SessionManager) UpdateQuantity(ctx context.Context, sess *Session, productID, size string, quantity int) error {
	if sess.processing() {
		return &errors.ErrPaymentProcessing{}
	}
	if !inCart(sess.Cart, productID, size) {
		return &errors.ErrNotFound{Resource: "cart item", ID: productID + "/" + size}
	}

	sess.Cart.UpdateQuantity(ctx, productID, size, quantity)
	s.metrics.CartOperationsTotal.WithLabelValues("update").Inc()
	s.publish(ctx, events.New(events.TypeCartItemUpdated, sess.ID, map[string]interface{}{
		"product_id": productID,
		"size":       size,
		"quantity":   quantity,
	}))
	return nil
}

// RemoveItem drops a line. Removing an absent line is not an error.
func (s *SessionManager) RemoveItem(ctx context.Context, sess *Session, productID, size string) error {
	if sess.processing() {
		return &errors.ErrPaymentProcessing{}
	}
	if !inCart(sess.Cart, productID, size) {
		return nil
	}

	sess.Cart.RemoveItem(ctx, productID, size)
	s.metrics.CartOperationsTotal.WithLabelValues("remove").Inc()
	s.publish(ctx, events.New(events.TypeCartItemRemoved, sess.ID, map[string]interface{}{
		"product_id": productID,
		"size":       size,
	}))
	return nil
}

// ClearCart empties the cart. Like every cart edit it is refused while a payment is processing.
func (s *SessionManager) ClearCart(ctx context.Context, sess *Session) error {
	if sess.processing() {
		return &errors.ErrPaymentProcessing{}
	}

	sess.Cart.ClearCart(ctx)
	s.metrics.CartOperationsTotal.WithLabelValues("clear").Inc()
	s.publish(ctx, events.New(events.TypeCartCleared, sess.ID, nil))
	return nil
}

func inCart(c *cart.Store, productID, size string) bool {
	for _, item := range c.Items() {
		if item.Matches(productID, size) {
			return true
		}
	}
	return false
}

// StartCheckout begins a new checkout, replacing any previous one
func (s *SessionManager) StartCheckout(ctx context.Context, sess *Session) (checkout.Snapshot, error) {
	if sess.Cart.IsEmpty() {
		return checkout.Snapshot{}, &errors.ErrEmptyCart{}
	}

	sess.mu.Lock()
	if sess.flow != nil && sess.flow.Processing() {
		sess.mu.Unlock()
		return checkout.Snapshot{}, &errors.ErrPaymentProcessing{}
	}
	opts := append([]checkout.Option{checkout.WithLogger(s.logger.With(zap.String("session_id", sess.ID)))}, s.cfg.FlowOptions...)
	flow := checkout.NewFlow(sess.Cart, sess.Language, opts...)
	sess.flow = flow
	sess.mu.Unlock()

	s.publish(ctx, events.New(events.TypeCheckoutStarted, sess.ID, map[string]interface{}{
		"items": sess.Cart.ItemCount(),
	}))
	return flow.Snapshot()
}

// Checkout returns the session's current flow
func (s *SessionManager) Checkout(sess *Session) (*checkout.Flow, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.flow == nil {
		return nil, &errors.ErrNotFound{Resource: "checkout", ID: sess.ID}
	}
	return sess.flow, nil
}

// SubmitShipping advances the checkout past the shipping form
func (s *SessionManager) SubmitShipping(ctx context.Context, sess *Session, info domain.ShippingInfo) (checkout.Snapshot, error) {
	flow, err := s.Checkout(sess)
	if err != nil {
		return checkout.Snapshot{}, err
	}

	fieldErrs, err := flow.SubmitShipping(ctx, info)
	if err != nil {
		return checkout.Snapshot{}, err
	}
	if len(fieldErrs) > 0 {
		s.metrics.ValidationFailures.WithLabelValues(string(domain.CheckoutStepShipping)).Inc()
		return checkout.Snapshot{}, &errors.ErrValidation{Fields: fieldErrs}
	}

	return flow.Snapshot()
}

// Back returns the checkout to the shipping form
func (s *SessionManager) Back(ctx context.Context, sess *Session) (checkout.Snapshot, error) {
	flow, err := s.Checkout(sess)
	if err != nil {
		return checkout.Snapshot{}, err
	}
	if err := flow.Back(ctx); err != nil {
		return checkout.Snapshot{}, err
	}
	return flow.Snapshot()
}

// SubmitPayment pays for the cart. It blocks for the processing delay.
func (s *SessionManager) SubmitPayment(ctx context.Context, sess *Session, info domain.PaymentInfo) (*domain.Order, error) {
	flow, err := s.Checkout(sess)
	if err != nil {
		return nil, err
	}

	order, fieldErrs, err := flow.SubmitPayment(ctx, info)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		s.metrics.ValidationFailures.WithLabelValues(string(domain.CheckoutStepPayment)).Inc()
		return nil, &errors.ErrValidation{Fields: fieldErrs}
	}

	s.metrics.OrdersTotal.Inc()
	s.metrics.OrderRevenueTotal.Add(order.Total.InexactFloat64())
	s.logger.Info("Order placed",
		zap.String("session_id", sess.ID),
		zap.String("order_id", order.ID),
		zap.String("total", order.Total.StringFixed(2)),
	)
	s.publish(ctx, events.New(events.TypeOrderPlaced, sess.ID, map[string]interface{}{
		"order_id": order.ID,
		"items":    len(order.Items),
		"subtotal": order.Subtotal.StringFixed(2),
		"shipping": order.Fee.StringFixed(2),
		"total":    order.Total.StringFixed(2),
	}))
	return order, nil
}

// Login signs the session in under name
func (s *SessionManager) Login(ctx context.Context, sess *Session, name, email string) (domain.User, error) {
	user, err := sess.Auth.Login(ctx, name, email)
	if err != nil {
		if verr, ok := err.(*errors.ErrValidation); ok {
			verr.Fields = map[string]string{"name": sess.Language.T("error.nameRequired")}
		}
		return domain.User{}, err
	}

	s.publish(ctx, events.New(events.TypeUserSignedIn, sess.ID, map[string]interface{}{
		"user_id": user.ID.String(),
	}))
	return user, nil
}

func (s *SessionManager) Logout(ctx context.Context, sess *Session) {
	if _, ok := sess.Auth.CurrentUser(); !ok {
		return
	}
	sess.Auth.Logout(ctx)
	s.publish(ctx, events.New(events.TypeUserSignedOut, sess.ID, nil))
}

// publish never fails the caller; delivery problems are logged and counted
func (s *SessionManager) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.metrics.EventPublishErrors.Inc()
		s.logger.Warn("Failed to publish event", zap.String("type", event.Type), zap.Error(err))
	}
}
