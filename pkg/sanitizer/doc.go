// Package sanitizer normalises user-entered text before it reaches the
// composer: block texts, edited email items and template names.
//
// Helpers are plain string transforms and can be chained with Compose:
//
//	name := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)
//	clean := name("  Offerte\naanvraag ")
//	// "Offerte aanvraag"
package sanitizer
