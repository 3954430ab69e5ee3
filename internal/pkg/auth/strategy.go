package auth

import "time"

// Claims are the identity fields embedded in an auth token.
type Claims struct {
	UserID      int64
	Role        string
	DisplayName string
}

type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
