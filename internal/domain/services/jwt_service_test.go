package services

import (
	"testing"

	"sternkern-rent-nexus/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seedUser(t *testing.T, svc *JWTService, username, password, role string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}
	require.NoError(t, svc.DB.Create(user).Error)
	return user
}

func TestLoginAndClaimsRoundTrip(t *testing.T) {
	svc := NewJWTService(testConfig(), newTestDB(t)).(*JWTService)
	seedUser(t, svc, "landlord", "admin123", models.RoleLandlord)

	result, err := svc.Login("landlord", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, "landlord", result.User.Username)
	assert.Equal(t, models.RoleLandlord, result.User.Role)

	claims, err := svc.ExtractClaims(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "landlord", claims.Username)
	assert.Equal(t, models.RoleLandlord, claims.Role)
	assert.Equal(t, result.User.ID, claims.UserID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewJWTService(testConfig(), newTestDB(t)).(*JWTService)
	seedUser(t, svc, "caretaker", "secret", models.RoleCaretaker)

	_, err := svc.Login("caretaker", "wrong")
	assert.Error(t, err)

	_, err = svc.Login("nobody", "secret")
	assert.Error(t, err)
}

func TestExtractClaimsRejectsTamperedToken(t *testing.T) {
	svc := NewJWTService(testConfig(), newTestDB(t)).(*JWTService)
	user := seedUser(t, svc, "landlord", "admin123", models.RoleLandlord)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	_, err = svc.ExtractClaims(token + "x")
	assert.Error(t, err)
}
