package account

// PasswordHasher is the credential primitive the account and invite flows
// depend on.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

const MinPasswordLength = 8
