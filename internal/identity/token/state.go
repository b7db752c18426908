package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/metorial/identity-core/pkg/constant"
)

// StateService signs and verifies the state parameter carried through
// the federation/OAuth round-trip. The token binds the intent and
// tenant so a callback cannot be replayed against a different flow.
type StateService struct {
	Secret string
}

type StateClaims struct {
	jwt.RegisteredClaims
	IntentID string `json:"intent_id"`
	TenantID string `json:"tenant_id,omitempty"`
	Provider string `json:"provider,omitempty"`
}

func NewStateService(secret string) *StateService {
	return &StateService{Secret: secret}
}

func (s *StateService) Sign(intentID, tenantID, provider string) (string, error) {
	now := time.Now()
	claims := StateClaims{
		IntentID: intentID,
		TenantID: tenantID,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(constant.StateTokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
}

// Verify parses and validates a state token string.
func (s *StateService) Verify(tokenString string) (*StateClaims, error) {
	claims := &StateClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid state token")
	}
	return claims, nil
}
