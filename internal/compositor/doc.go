// Package compositor bakes the parameter map's blue channel into the albedo
// map and writes PNG outputs.
//
// For a complete bundle the albedo is sharpened, its RGB is multiplied by the
// parameter's blue channel (itself multiplied by the albedo alpha when the
// albedo is not fully opaque), and all three maps are written as PNG. The
// parameter and normal maps pass through unchanged apart from the format.
// An unclassified file is decoded and re-encoded only.
//
// Every failure is an *Error wrapping ErrValidation or ErrIO. Nothing here
// panics on bad input and nothing retries.
package compositor
