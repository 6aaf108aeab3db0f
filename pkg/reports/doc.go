// Package reports persists lie-detection verdicts.
//
// Verdicts can be written to PostgreSQL (JSONB rows, schema applied from
// embedded goose migrations), MongoDB (one native document per verdict) or
// an in-process MemoryStore. A Redis-backed Cache keyed by verdict hash sits
// in front of lookups. Repository fans writes out to every configured store.
//
//	pool, err := reports.ConnectPostgres(ctx, cfg.Postgres)
//	if err != nil {
//		return err
//	}
//	if err := reports.MigratePostgres(ctx, pool, cfg.Postgres, log); err != nil {
//		return err
//	}
//	repo := reports.NewRepository(
//		reports.WithStore(reports.NewPostgresStore(pool)),
//		reports.WithCache(reports.NewCache(rdb, cfg.Redis)),
//	)
//
// Lookups that miss return ErrNotFound.
package reports
