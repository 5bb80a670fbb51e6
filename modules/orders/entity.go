package orders

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/dmitrymomot/modelguard"
)

// Order statuses. CompletionDate becomes mandatory once an order is completed.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// DateLayout is the wire format for all order dates.
const DateLayout = "2006-01-02"

// Order is a customer order with its line items. The embedded Model carries
// guards and the error bag; it is excluded from JSON and from traversal.
type Order struct {
	modelguard.Model `json:"-"`

	ID             uuid.UUID    `json:"id"`
	OrderNumber    string       `json:"orderNumber"`
	CustomerEmail  string       `json:"customerEmail"`
	Status         string       `json:"status"`
	CompletionDate string       `json:"completionDate,omitempty"`
	Items          []*OrderItem `json:"orderItems"`
}

func (o *Order) Kind() string { return "order" }

// OrderItem is one line of an order. ID is assigned by the store; a zero ID
// means the item is new, so violation paths fall back to its position.
type OrderItem struct {
	modelguard.Model `json:"-"`

	ID        int64  `json:"id,omitempty"`
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

func (i *OrderItem) Kind() string { return "order_item" }

// ItemKey reports the persisted item id as the stable path key.
func (i *OrderItem) ItemKey() (string, bool) {
	if i.ID == 0 {
		return "", false
	}
	return strconv.FormatInt(i.ID, 10), true
}
