package auth_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/attendly-app/attendly-lambda/internal/auth"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "a-long-and-secure-secret-for-tests-only"
const testUserID = "user-123"
const testRole = "professor"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should panic when JWT_SECRET is empty, but it did not.")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute*5)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("Wrong UserID. Expected: %s, got: %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("Wrong Role. Expected: %s, got: %s", testRole, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Second)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if err == nil {
			t.Fatal("ValidateJWT should fail for an expired token, but it passed.")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("Wrong error for expired token. Expected: %v, got: %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		if _, err := auth.ValidateJWT("not-a-token"); err == nil {
			t.Fatal("ValidateJWT should fail for a malformed token, but it passed.")
		}
	})
}

func TestClaimsContext(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("RoundTrip", func(t *testing.T) {
		ctx := auth.ContextWithClaims(context.Background(), &auth.UserClaims{UserID: testUserID, Role: testRole})
		claims, err := auth.GetUserClaimsFromContext(ctx)
		if err != nil {
			t.Fatalf("GetUserClaimsFromContext failed: %v", err)
		}
		if claims.UserID != testUserID {
			t.Errorf("Wrong UserID from context: %s", claims.UserID)
		}
	})

	t.Run("EmptyContext", func(t *testing.T) {
		if _, err := auth.GetUserClaimsFromContext(context.Background()); !errors.Is(err, auth.ErrNoClaims) {
			t.Errorf("Expected ErrNoClaims, got: %v", err)
		}
	})
}
