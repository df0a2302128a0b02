package service

type PasswordService interface {
	// Hash derives a self-describing digest (algorithm, cost parameters and
	// salt travel inside the string) from the plaintext.
	Hash(password string) (string, error)
	// Verify reports whether password matches digest. Mismatches and
	// undecodable digests both return false; Verify never errors.
	Verify(password, digest string) bool
}
