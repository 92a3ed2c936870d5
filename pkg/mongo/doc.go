// Package mongo connects to MongoDB for the "mongo" store backend.
//
// New applies the pool and retry settings from Config and pings the
// deployment before returning. Collection is the shortcut the store uses:
// it resolves the database and collection names from the same Config.
//
//	coll, err := mongo.Collection(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := kvstore.NewMongoStore(coll)
package mongo
