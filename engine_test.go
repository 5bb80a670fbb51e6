package modelguard_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/modelguard"
	"github.com/dmitrymomot/modelguard/pkg/rules"
	"github.com/dmitrymomot/modelguard/pkg/schema"
)

// Test entity graph: invoice -> customer (nested), invoice -> lines
// (collection, items optionally keyed), line -> nested notes are scalars.

type customer struct {
	modelguard.Model
	Name  string
	Email string
}

func (c *customer) Kind() string { return "customer" }

type line struct {
	modelguard.Model
	ID       int64
	Quantity int
}

func (l *line) Kind() string { return "line" }

func (l *line) ItemKey() (string, bool) {
	if l.ID == 0 {
		return "", false
	}
	return strconv.FormatInt(l.ID, 10), true
}

type bundle struct {
	modelguard.Model
	Tags  []int
	Lines []*line
}

func (b *bundle) Kind() string { return "bundle" }

type invoice struct {
	modelguard.Model
	Number   string
	Status   string
	Customer *customer
	Lines    []*line
	Parent   *invoice // for cycle tests
}

func (in *invoice) Kind() string { return "invoice" }

func testRegistry(t *testing.T) *schema.Registry {
	t.Helper()

	reg := schema.NewRegistry()
	reg.MustRegister(&schema.Type{
		Kind: "customer",
		Fields: []schema.Field{
			{
				Name:  "name",
				Rules: []rules.Descriptor{rules.Presence()},
				Value: func(e any) any { return e.(*customer).Name },
			},
			{
				Name:  "email",
				Rules: []rules.Descriptor{rules.Email()},
				Value: func(e any) any { return e.(*customer).Email },
			},
		},
	})
	reg.MustRegister(&schema.Type{
		Kind: "line",
		Fields: []schema.Field{
			{
				Name:  "quantity",
				Rules: []rules.Descriptor{rules.MinValue(0)},
				Value: func(e any) any { return e.(*line).Quantity },
			},
		},
	})
	reg.MustRegister(&schema.Type{
		Kind: "invoice",
		Fields: []schema.Field{
			{
				Name:  "number",
				Rules: []rules.Descriptor{rules.Presence()},
				Value: func(e any) any { return e.(*invoice).Number },
			},
			{
				Name:    "status",
				Default: "draft",
				Value: func(e any) any {
					if s := e.(*invoice).Status; s != "" {
						return s
					}
					return nil
				},
			},
			{
				Name: "customer",
				Value: func(e any) any {
					if c := e.(*invoice).Customer; c != nil {
						return modelguard.Entity(c)
					}
					return nil
				},
			},
			{
				Name: "lines",
				Value: func(e any) any {
					ls := e.(*invoice).Lines
					if len(ls) == 0 {
						return nil
					}
					items := make([]modelguard.Entity, len(ls))
					for i, l := range ls {
						items[i] = l
					}
					return items
				},
			},
			{
				Name: "parent",
				Value: func(e any) any {
					if p := e.(*invoice).Parent; p != nil {
						return modelguard.Entity(p)
					}
					return nil
				},
			},
		},
	})
	return reg
}

func TestEngineValidate(t *testing.T) {
	engine := modelguard.NewEngine(testRegistry(t))

	t.Run("scalar violation at direct field path", func(t *testing.T) {
		bag, err := engine.Validate(&invoice{})
		require.NoError(t, err)
		require.Len(t, bag.For("number"), 1)
	})

	t.Run("nested violation is prefixed with field name", func(t *testing.T) {
		bag, err := engine.Validate(&invoice{
			Number:   "INV-1",
			Customer: &customer{Email: "not-an-email"},
		})
		require.NoError(t, err)
		assert.Len(t, bag.For("customer.name"), 1)
		assert.Len(t, bag.For("customer.email"), 1)
		assert.Empty(t, bag.For("email"), "child paths must not leak to the parent level")
	})

	t.Run("collection item keyed by stable identifier", func(t *testing.T) {
		bag, err := engine.Validate(&invoice{
			Number: "INV-1",
			Lines:  []*line{{ID: 7, Quantity: -2}},
		})
		require.NoError(t, err)
		require.Len(t, bag.For("lines.7.quantity"), 1)
	})

	t.Run("collection item falls back to positional index", func(t *testing.T) {
		bag, err := engine.Validate(&invoice{
			Number: "INV-1",
			Lines:  []*line{{Quantity: 1}, {Quantity: -1}},
		})
		require.NoError(t, err)
		require.Len(t, bag.For("lines.1.quantity"), 1)
		assert.Equal(t, 1, bag.Count())
	})

	t.Run("unset relation is not recursed into", func(t *testing.T) {
		bag, err := engine.Validate(&invoice{Number: "INV-1"})
		require.NoError(t, err)
		assert.False(t, bag.Any())
	})

	t.Run("declared default substitutes nil", func(t *testing.T) {
		// status has no rules; defaults surface through sibling lookups,
		// exercised in the RequiredIf orchestration test below. Here we only
		// assert the default keeps the entity clean.
		bag, err := engine.Validate(&invoice{Number: "INV-1"})
		require.NoError(t, err)
		assert.False(t, bag.Any())
	})

	t.Run("unregistered kind is fatal", func(t *testing.T) {
		empty := modelguard.NewEngine(schema.NewRegistry())
		_, err := empty.Validate(&invoice{Number: "INV-1"})
		assert.ErrorIs(t, err, modelguard.ErrUnknownKind)
	})

	t.Run("cyclic graph is fatal", func(t *testing.T) {
		in := &invoice{Number: "INV-1"}
		in.Parent = in
		_, err := engine.Validate(in)
		assert.ErrorIs(t, err, modelguard.ErrCyclicGraph)
	})

	t.Run("shared child across branches is not a cycle", func(t *testing.T) {
		parent := &invoice{Number: "INV-0"}
		child := &invoice{Number: "INV-1", Parent: parent}
		_, err := engine.Validate(child)
		assert.NoError(t, err)
	})

	t.Run("nil entity is rejected", func(t *testing.T) {
		_, err := engine.Validate(nil)
		assert.ErrorIs(t, err, modelguard.ErrNilEntity)
	})

	t.Run("empty collection is a scalar leaf for rule evaluation", func(t *testing.T) {
		reg := schema.NewRegistry()
		reg.MustRegister(&schema.Type{
			Kind: "line",
			Fields: []schema.Field{
				{
					Name:  "quantity",
					Rules: []rules.Descriptor{rules.MinValue(0)},
					Value: func(e any) any { return e.(*line).Quantity },
				},
			},
		})
		reg.MustRegister(&schema.Type{
			Kind: "bundle",
			Fields: []schema.Field{
				{
					Name:  "tags",
					Rules: []rules.Descriptor{rules.Presence()},
					Value: func(e any) any { return e.(*bundle).Tags },
				},
				{
					Name:  "lines",
					Rules: []rules.Descriptor{rules.Presence()},
					Value: func(e any) any {
						items := make([]modelguard.Entity, 0, len(e.(*bundle).Lines))
						for _, l := range e.(*bundle).Lines {
							items = append(items, l)
						}
						return items
					},
				},
			},
		})

		bag, err := modelguard.NewEngine(reg).Validate(&bundle{})
		require.NoError(t, err)
		assert.Len(t, bag.For("tags"), 1, "empty scalar collection must fail presence")
		assert.Len(t, bag.For("lines"), 1, "empty entity collection must fail presence, not recurse")

		bag, err = modelguard.NewEngine(reg).Validate(&bundle{
			Tags:  []int{1},
			Lines: []*line{{Quantity: 1}},
		})
		require.NoError(t, err)
		assert.False(t, bag.Any())
	})

	t.Run("paths follow traversal order", func(t *testing.T) {
		bag, err := engine.Validate(&invoice{
			Customer: &customer{},
			Lines:    []*line{{Quantity: -1}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"number", "customer.name", "lines.0.quantity"}, bag.Paths())
	})
}
