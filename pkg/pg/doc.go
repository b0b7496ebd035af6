// Package pg connects to PostgreSQL through pgx, applies the cart schema
// with goose and stores cart snapshots in the cart_snapshots table.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//	store := pg.NewCartStore(pool)
package pg
