// Package repl is a line-oriented terminal front end for svc/composer.
//
// A Terminal plays three roles for one composer.Service:
//
//   - composer.Observer: every Change re-renders the affected section
//     (blocks, templates or the email) from the change's snapshot;
//   - composer.ConfirmFunc: Confirm asks yes/no questions on the same input;
//   - command loop: Run reads commands and maps them onto composer.Controller
//     intents, prompting for dialog input where the intent needs it.
//
// Positions in the email are shown and entered 1-based. Block and template
// ids are shown in square brackets.
//
// Wiring:
//
//	term := repl.New(os.Stdin, os.Stdout)
//	svc, err := composer.NewService(ctx, store,
//	    composer.WithConfirm(term.Confirm),
//	    composer.WithObserver(term),
//	)
//	...
//	err = term.Run(ctx, composer.NewController(svc, sink))
package repl
