package hash

// Hasher produces and checks one-way password hashes.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
