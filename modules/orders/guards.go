package orders

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/modelguard"
)

// NumberIndex is the slice of the store the uniqueness guard needs.
type NumberIndex interface {
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}

// UniqueOrderNumber rejects orders whose number is already persisted. An
// optional Redis client caches confirmed numbers so repeated submissions of
// a taken number skip the database round trip.
type UniqueOrderNumber struct {
	store NumberIndex
	cache *redis.Client
}

// NewUniqueOrderNumber creates the guard. The cache may be nil.
func NewUniqueOrderNumber(store NumberIndex, cache *redis.Client) *UniqueOrderNumber {
	return &UniqueOrderNumber{store: store, cache: cache}
}

const takenNumbersKey = "orders:taken_numbers"

// Validate checks the order number against the store. Store failures are
// faults and abort the validation call; only a confirmed duplicate is a
// business-rule violation.
func (g *UniqueOrderNumber) Validate(ctx context.Context, e modelguard.Entity) (*modelguard.Result, error) {
	o, ok := e.(*Order)
	if !ok {
		return nil, fmt.Errorf("%w: unique order number guard applied to kind %q", modelguard.ErrGuardContract, e.Kind())
	}

	if g.cache != nil {
		taken, err := g.cache.SIsMember(ctx, takenNumbersKey, o.OrderNumber).Result()
		if err == nil && taken {
			return modelguard.OK().AddViolation("orderNumber", "order number already exists"), nil
		}
		// Cache misses and cache failures both fall through to the store.
	}

	exists, err := g.store.ExistsByNumber(ctx, o.OrderNumber)
	if err != nil {
		return nil, err
	}
	if !exists {
		return modelguard.OK(), nil
	}

	if g.cache != nil {
		g.cache.SAdd(ctx, takenNumbersKey, o.OrderNumber)
	}
	return modelguard.OK().AddViolation("orderNumber", "order number already exists"), nil
}

// ItemDateRange requires every item's end date to come after its start date.
// Inputs are already format-checked by the syntactic stage, so parse errors
// here indicate a schema/guard mismatch and surface as faults.
type ItemDateRange struct{}

// Validate checks the temporal ordering of each item, addressing violations
// with the same collection keys the traversal engine would use.
func (g ItemDateRange) Validate(_ context.Context, e modelguard.Entity) (*modelguard.Result, error) {
	o, ok := e.(*Order)
	if !ok {
		return nil, fmt.Errorf("%w: item date range guard applied to kind %q", modelguard.ErrGuardContract, e.Kind())
	}

	res := modelguard.OK()
	for i, item := range o.Items {
		if item.StartDate == "" || item.EndDate == "" {
			continue
		}
		start, err := time.Parse(DateLayout, item.StartDate)
		if err != nil {
			return nil, fmt.Errorf("item date range guard: start date: %w", err)
		}
		end, err := time.Parse(DateLayout, item.EndDate)
		if err != nil {
			return nil, fmt.Errorf("item date range guard: end date: %w", err)
		}
		if !end.After(start) {
			key, ok := item.ItemKey()
			if !ok {
				key = strconv.Itoa(i)
			}
			res.AddViolation("orderItems."+key+".endDate", "must be after startDate")
		}
	}
	return res, nil
}
