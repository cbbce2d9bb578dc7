package pkguid

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string. It returns an empty
	// string when no identifier could be produced.
	Generate() string
}
