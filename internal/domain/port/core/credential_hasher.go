package core

// CredentialHasher derives and verifies one-way hashes of player secrets.
// The domain only ever stores and compares hashes, never the raw secret.
type CredentialHasher interface {
	// Hash derives an opaque hash from the given secret
	Hash(secret string) (string, error)
	// Compare reports whether the secret matches the stored hash
	Compare(hash, secret string) bool
}
