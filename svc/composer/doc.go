// Package composer is the state model of mailblocks: a catalog of reusable
// text blocks, a catalog of named templates and the email being composed
// from them.
//
// Service owns the three collections. Catalog changes are written through
// to a kvstore.Store as whole collections, encoded by a Codec (JSON by
// default, matching the browser widget's localStorage layout). The email
// itself is never persisted. An empty store is seeded with five Dutch
// blocks and two templates.
//
//	store := kvstore.NewMemoryStore(nil)
//	svc, err := composer.NewService(ctx, store,
//	    composer.WithConfirm(askUser),
//	    composer.WithObserver(view),
//	    composer.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//	item, err := svc.AppendToEmail(ctx, 1)
//	text, err := svc.ComposeText() // "Beste [Naam],"
//
// Views render from the Change values delivered to observers and send user
// intents through a Controller, which also tracks the edit and save
// dialogs. Message maps any returned error to the text a view should show.
//
// Destructive operations (DeleteBlock, DeleteTemplate, ClearEmail) ask the
// injected ConfirmFunc first and return ErrCancelled when declined. When a
// store write fails, the in-memory change is kept and the returned error
// matches ErrStorage.
package composer
