// Package checkout implements the three-step checkout of a session: shipping form,
// payment form with simulated processing, and the confirmation that produces an order.
package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/cart"
	"github.com/nexusshop/storefront/internal/domain"
	"github.com/nexusshop/storefront/pkg/errors"
)

// DefaultProcessingDelay is the simulated payment latency
const DefaultProcessingDelay = 2 * time.Second

// DefaultCountry prefills the shipping form
const DefaultCountry = "United States"

// Option configures a Flow
type Option func(*Flow)

// WithProcessingDelay overrides the simulated payment latency
func WithProcessingDelay(d time.Duration) Option {
	return func(f *Flow) { f.delay = d }
}

// WithClock overrides the time source used for order numbers
func WithClock(now func() time.Time) Option {
	return func(f *Flow) { f.now = now }
}

// WithTimer overrides how the processing delay is awaited
func WithTimer(after func(time.Duration) <-chan time.Time) Option {
	return func(f *Flow) { f.after = after }
}

func WithLogger(logger *zap.Logger) Option {
	return func(f *Flow) { f.logger = logger }
}

// Flow is one checkout attempt. It is safe for concurrent use.
type Flow struct {
	mu         sync.Mutex
	cart       *cart.Store
	tr         Translator
	step       domain.CheckoutStep
	shipping   domain.ShippingInfo
	payment    domain.PaymentInfo
	errors     FieldErrors
	processing bool
	order      *domain.Order

	delay  time.Duration
	now    func() time.Time
	after  func(time.Duration) <-chan time.Time
	logger *zap.Logger
}

// NewFlow starts a checkout at the shipping step
func NewFlow(c *cart.Store, tr Translator, opts ...Option) *Flow {
	f := &Flow{
		cart:     c,
		tr:       tr,
		step:     domain.CheckoutStepShipping,
		shipping: domain.ShippingInfo{Country: DefaultCountry},
		errors:   FieldErrors{},
		delay:    DefaultProcessingDelay,
		now:      time.Now,
		after:    time.After,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Snapshot is the observable state of a flow
type Snapshot struct {
	Step       domain.CheckoutStep `json:"step"`
	Processing bool                `json:"processing"`
	Shipping   domain.ShippingInfo `json:"shipping"`
	Payment    domain.PaymentInfo  `json:"payment"`
	Errors     FieldErrors         `json:"errors"`
	Order      *domain.Order       `json:"order,omitempty"`
}

// guard refuses the form steps once the cart is empty. Must hold f.mu.
func (f *Flow) guard() error {
	if f.step != domain.CheckoutStepConfirmation && f.cart.IsEmpty() {
		return &errors.ErrEmptyCart{}
	}
	return nil
}

func (f *Flow) transition(next domain.CheckoutStep) error {
	if !f.step.CanTransitionTo(next) {
		return &errors.ErrInvalidStateTransition{From: f.step, To: next}
	}
	f.step = next
	return nil
}

// Step returns the current step
func (f *Flow) Step() domain.CheckoutStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Processing reports whether a payment submission is in flight
func (f *Flow) Processing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.processing
}

// SubmitShipping validates the shipping form and advances to payment when valid.
// Field errors are returned without an error and leave the flow in place.
func (f *Flow) SubmitShipping(_ context.Context, info domain.ShippingInfo) (FieldErrors, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.guard(); err != nil {
		return nil, err
	}
	if f.step != domain.CheckoutStepShipping {
		return nil, &errors.ErrInvalidStateTransition{From: f.step, To: domain.CheckoutStepPayment}
	}

	if info.Country == "" {
		info.Country = DefaultCountry
	}
	f.shipping = info
	f.errors = ValidateShipping(info, f.tr)
	if len(f.errors) > 0 {
		return copyErrors(f.errors), nil
	}

	return nil, f.transition(domain.CheckoutStepPayment)
}

// Back returns from payment to shipping, keeping both forms
func (f *Flow) Back(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.guard(); err != nil {
		return err
	}
	if f.processing {
		return &errors.ErrPaymentProcessing{}
	}
	if f.step != domain.CheckoutStepPayment {
		return &errors.ErrInvalidStateTransition{From: f.step, To: domain.CheckoutStepShipping}
	}

	f.errors = FieldErrors{}
	return f.transition(domain.CheckoutStepShipping)
}

// SubmitPayment validates the payment form, waits out the processing delay, then
// creates the order, clears the cart and moves to confirmation. Submissions made
// while processing fail with ErrPaymentProcessing.
func (f *Flow) SubmitPayment(ctx context.Context, info domain.PaymentInfo) (*domain.Order, FieldErrors, error) {
	f.mu.Lock()

	if err := f.guard(); err != nil {
		f.mu.Unlock()
		return nil, nil, err
	}
	if f.processing {
		f.mu.Unlock()
		return nil, nil, &errors.ErrPaymentProcessing{}
	}
	if f.step != domain.CheckoutStepPayment {
		from := f.step
		f.mu.Unlock()
		return nil, nil, &errors.ErrInvalidStateTransition{From: from, To: domain.CheckoutStepConfirmation}
	}

	f.payment = info
	f.errors = ValidatePayment(info, f.tr)
	if len(f.errors) > 0 {
		errs := copyErrors(f.errors)
		f.mu.Unlock()
		return nil, errs, nil
	}

	f.processing = true
	sum := f.cart.Summary()
	order := &domain.Order{
		Items:    sum.Items,
		Shipping: f.shipping,
		Subtotal: sum.Subtotal,
		Fee:      sum.Shipping,
		Total:    sum.Total,
	}
	f.mu.Unlock()

	f.logger.Info("Processing payment", zap.Int("items", len(order.Items)), zap.String("total", order.Total.StringFixed(2)))

	// The wait is not tied to ctx: a started payment always completes.
	<-f.after(f.delay)

	f.mu.Lock()
	defer f.mu.Unlock()

	order.CreatedAt = f.now()
	order.ID = OrderNumber(order.CreatedAt)
	f.cart.ClearCart(context.WithoutCancel(ctx))
	f.order = order
	f.processing = false
	f.payment = domain.PaymentInfo{}
	if err := f.transition(domain.CheckoutStepConfirmation); err != nil {
		return nil, nil, err
	}

	f.logger.Info("Order confirmed", zap.String("order_id", order.ID))
	return order, nil, nil
}

// Snapshot returns the current state with the card number masked and the CVV omitted
func (f *Flow) Snapshot() (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.guard(); err != nil {
		return Snapshot{}, err
	}

	payment := f.payment
	payment.CardNumber = MaskCardNumber(payment.CardNumber)
	payment.CVV = ""

	return Snapshot{
		Step:       f.step,
		Processing: f.processing,
		Shipping:   f.shipping,
		Payment:    payment,
		Errors:     copyErrors(f.errors),
		Order:      f.order,
	}, nil
}

// OrderNumber is "NX" followed by the last eight digits of the Unix millisecond time
func OrderNumber(t time.Time) string {
	return fmt.Sprintf("NX%08d", t.UnixMilli()%100000000)
}

func copyErrors(errs FieldErrors) FieldErrors {
	out := make(FieldErrors, len(errs))
	for k, v := range errs {
		out[k] = v
	}
	return out
}
