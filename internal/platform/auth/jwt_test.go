package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
)

func TestIssueAndParse(t *testing.T) {
	m := NewTokenManager("s3cret")
	p := domain.Principal{UserID: uuid.New(), Role: domain.RoleMentor}

	token, err := m.Issue(p, time.Hour)
	require.NoError(t, err)

	got, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestParse_NormalizesRole(t *testing.T) {
	m := NewTokenManager("s3cret")
	userID := uuid.New()

	token := sign(t, "s3cret", Claims{
		Role: "mentee",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    Issuer,
			Audience:  jwt.ClaimStrings{Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	got, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMentee, got.Role)
	assert.Equal(t, userID, got.UserID)
}

func TestParse_Rejects(t *testing.T) {
	m := NewTokenManager("s3cret")
	valid := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		Issuer:    Issuer,
		Audience:  jwt.ClaimStrings{Audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongAudience := valid
	wrongAudience.Audience = jwt.ClaimStrings{"someone-else"}

	badSubject := valid
	badSubject.Subject = "not-a-uuid"

	cases := map[string]string{
		"wrong secret":   sign(t, "other", Claims{Role: "MENTOR", RegisteredClaims: valid}),
		"expired":        sign(t, "s3cret", Claims{Role: "MENTOR", RegisteredClaims: expired}),
		"wrong audience": sign(t, "s3cret", Claims{Role: "MENTOR", RegisteredClaims: wrongAudience}),
		"bad subject":    sign(t, "s3cret", Claims{Role: "MENTOR", RegisteredClaims: badSubject}),
		"garbage":        "not.a.token",
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := m.Parse(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	_, err := m.Parse(sign(t, "s3cret", Claims{Role: "ADMIN", RegisteredClaims: valid}))
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func sign(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}
