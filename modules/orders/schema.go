package orders

import (
	"github.com/dmitrymomot/modelguard"
	"github.com/dmitrymomot/modelguard/pkg/rules"
	"github.com/dmitrymomot/modelguard/pkg/schema"
)

// Schema builds the field-descriptor tables for the order aggregate. Call it
// once at startup and hand the registry to modelguard.New.
func Schema() *schema.Registry {
	reg := schema.NewRegistry()

	reg.MustRegister(&schema.Type{
		Kind: "order",
		Fields: []schema.Field{
			{
				Name:  "orderNumber",
				Rules: []rules.Descriptor{rules.Presence(), rules.MinLength(3)},
				Value: func(e any) any { return e.(*Order).OrderNumber },
			},
			{
				Name:  "customerEmail",
				Rules: []rules.Descriptor{rules.Presence(), rules.Email()},
				Value: func(e any) any { return e.(*Order).CustomerEmail },
			},
			{
				Name:    "status",
				Default: StatusPending,
				Value: func(e any) any {
					if s := e.(*Order).Status; s != "" {
						return s
					}
					return nil
				},
			},
			{
				Name: "completionDate",
				Rules: []rules.Descriptor{
					rules.RequiredIf("status", StatusCompleted),
					rules.DateFormat(DateLayout),
				},
				Value: func(e any) any {
					if d := e.(*Order).CompletionDate; d != "" {
						return d
					}
					return nil
				},
			},
			{
				Name: "orderItems",
				Value: func(e any) any {
					items := e.(*Order).Items
					if len(items) == 0 {
						return nil
					}
					out := make([]modelguard.Entity, len(items))
					for i, item := range items {
						out[i] = item
					}
					return out
				},
			},
		},
	})

	reg.MustRegister(&schema.Type{
		Kind: "order_item",
		Fields: []schema.Field{
			{
				Name:  "sku",
				Rules: []rules.Descriptor{rules.Presence()},
				Value: func(e any) any { return e.(*OrderItem).SKU },
			},
			{
				Name:  "quantity",
				Rules: []rules.Descriptor{rules.MinValue(0)},
				Value: func(e any) any { return e.(*OrderItem).Quantity },
			},
			{
				Name:  "startDate",
				Rules: []rules.Descriptor{rules.DateFormat(DateLayout)},
				Value: func(e any) any { return e.(*OrderItem).StartDate },
			},
			{
				Name:  "endDate",
				Rules: []rules.Descriptor{rules.DateFormat(DateLayout)},
				Value: func(e any) any { return e.(*OrderItem).EndDate },
			},
		},
	})

	return reg
}
