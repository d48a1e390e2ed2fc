// Package mongostore implements the account and catalog repositories on top
// of MongoDB using the official v2 driver.
//
// Documents are keyed by the entity id (`_id`). Unique indexes on owner email
// and store code back the ErrEmailAlreadyExists and ErrStoreCodeTaken
// sentinels; call EnsureIndexes once at startup.
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	repos := mongostore.New(db, mongostore.WithQueryTimeout(cfg.QueryTimeout))
//	if err := repos.EnsureIndexes(ctx); err != nil {
//		return err
//	}
//	svc := account.NewService(repos.Owners, repos.Stores, tokens)
//
// Driver timeouts, network failures and context cancellation are reported
// wrapped with the caller-facing ErrUnavailable sentinel of the owning
// package, so that a slow store lookup never reads as a missing store.
package mongostore
