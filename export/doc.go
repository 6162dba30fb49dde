// Package export writes assembled outlines as JSON.
//
// Output is pretty-printed with two-space indentation, and HTML escaping is
// disabled so heading text round-trips literally, non-ASCII characters
// included.
package export
