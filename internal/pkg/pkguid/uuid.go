package pkguid

// UUID adapts a UUID constructor to StringID.
type UUID struct {
	gen func() (string, error)
}

// NewUUID returns a StringID backed by gen, which must return a canonical
// UUID string or an error.
func NewUUID(gen func() (string, error)) *UUID {
	return &UUID{gen: gen}
}

// Generate returns a new UUID string, or "" if gen is missing or failed.
func (u *UUID) Generate() string {
	if u == nil || u.gen == nil {
		return ""
	}
	id, err := u.gen()
	if err != nil {
		return ""
	}
	return id
}
