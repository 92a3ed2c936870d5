// Package validator builds declarative validation rules and collects their
// failures into a single error value.
//
// A Rule pairs a Check function with a ValidationError describing the
// failure. Apply evaluates rules and returns ValidationErrors (which
// implements error) when any of them fail:
//
//	err := validator.Apply(
//	    validator.Required("text", text),
//	    validator.MaxRunes("text", text, 5000),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs.Has("text") {
//	    ...
//	}
//
// Rules only read the values they were built with, so the package holds no
// state and is safe for concurrent use.
package validator
