package types

// Credentials are the account's public key and shared secret. They are set
// once when a client is built and never change afterwards.
type Credentials struct {
	Key    string
	Secret string
}

// Empty reports whether either half is missing.
func (c Credentials) Empty() bool {
	return c.Key == "" || c.Secret == ""
}

// String never prints the secret.
func (c Credentials) String() string {
	if c.Secret == "" {
		return "Credentials{Key: " + c.Key + "}"
	}
	return "Credentials{Key: " + c.Key + ", Secret: ***}"
}

// GoString keeps %#v from leaking the secret as well.
func (c Credentials) GoString() string {
	return c.String()
}
