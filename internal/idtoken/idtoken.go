package idtoken

import (
	"crypto/ed25519"
	"crypto/rand"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Signer issues and verifies the id_token of the simulated Google OAuth
// exchange. It holds an ephemeral Ed25519 keypair: no party outside this
// process ever validates these tokens.
type Signer struct {
	private ed25519.PrivateKey
	public  ed25519.PublicKey
	Issuer  string
}

type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

func NewEphemeral(issuer string) *Signer {
	_, priv, _ := ed25519.GenerateKey(rand.Reader)
	pub := priv.Public().(ed25519.PublicKey)
	return &Signer{private: priv, public: pub, Issuer: issuer}
}

// Sign issues an id_token for the given profile with TTL.
func (s *Signer) Sign(sub, email, name, picture string, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		Email:   email,
		Name:    name,
		Picture: picture,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			Subject:   sub,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return t.SignedString(s.private)
}

// Parse validates the signature and issuer and returns the profile claims.
func (s *Signer) Parse(token string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.public, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithIssuer(s.Issuer),
	)
	if err != nil {
		return nil, err
	}
	return &claims, nil
}
