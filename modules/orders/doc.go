// Package orders is the reference consumer of the validation engine: an
// order aggregate with a registered schema, business-rule guards that
// consult PostgreSQL (with an optional Redis cache), and a chi router
// rendering the error bag as per-field JSON.
//
// # Usage
//
//	pool, _ := pg.Connect(ctx, pgCfg)
//	_ = pg.Migrate(ctx, pool, orders.Migrations, orders.MigrationsDir)
//
//	repo := orders.NewRepository(pool)
//	v := modelguard.New(orders.Schema())
//	svc := orders.NewService(repo, v, orders.WithGuards(
//	    orders.NewUniqueOrderNumber(repo, nil),
//	    orders.ItemDateRange{},
//	))
//
//	r := chi.NewRouter()
//	r.Mount("/orders", orders.Router(svc))
package orders
