package orders

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/modelguard"
)

// Store is the persistence surface the service needs.
type Store interface {
	NumberIndex
	Insert(ctx context.Context, o *Order) error
}

// Service is the application layer gluing validation to persistence: it
// attaches the configured guards, validates, and only then writes.
type Service struct {
	store     Store
	validator *modelguard.Validator
	guards    []modelguard.Guard
	log       *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithGuards sets the guards attached to every order before validation, in
// execution order.
func WithGuards(guards ...modelguard.Guard) ServiceOption {
	return func(s *Service) { s.guards = guards }
}

// WithServiceLogger sets the service logger.
func WithServiceLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates the order service.
func NewService(store Store, validator *modelguard.Validator, opts ...ServiceOption) *Service {
	s := &Service{
		store:     store,
		validator: validator,
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the order and persists it when clean. On a validation
// failure it returns ErrInvalidOrder and leaves the details on the order's
// error bag for the caller to render.
func (s *Service) Create(ctx context.Context, o *Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	for _, g := range s.guards {
		o.AttachGuard(g)
	}

	ok, err := s.validator.Validate(ctx, o)
	if err != nil {
		return err
	}
	if !ok {
		s.log.DebugContext(ctx, "order rejected",
			slog.String("order_number", o.OrderNumber),
			slog.Int("violations", o.Errors().Count()),
		)
		return ErrInvalidOrder
	}

	if err := s.store.Insert(ctx, o); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "order created",
		slog.String("id", o.ID.String()),
		slog.String("order_number", o.OrderNumber),
	)
	return nil
}
