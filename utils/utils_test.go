package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenStr, err := GenerateJWT("user@example.com")
	if err != nil {
		t.Fatal(err)
	}

	token, err := ValidateJWT(tokenStr)
	if err != nil {
		t.Fatal(err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if claims["email"] != "user@example.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
	if claims["type"] != "access" {
		t.Errorf("type claim = %v", claims["type"])
	}
}

func TestValidateRefreshTokenClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenStr, err := GenerateRefreshToken("user@example.com", "session-1")
	if err != nil {
		t.Fatal(err)
	}

	token, err := ValidateJWT(tokenStr)
	if err != nil {
		t.Fatal(err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["type"] != "refresh" {
		t.Errorf("type claim = %v", claims["type"])
	}
	if claims["sessionId"] != "session-1" {
		t.Errorf("sessionId claim = %v", claims["sessionId"])
	}
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	tokenStr, err := GenerateJWT("user@example.com")
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("JWT_SECRET", "another-secret")
	if _, err := ValidateJWT(tokenStr); err == nil {
		t.Error("a token signed with a different secret must not validate")
	}
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateJWT("user@example.com"); err == nil {
		t.Error("expected an error when JWT_SECRET is unset")
	}
}

func TestHashAndValidatePassword(t *testing.T) {
	hashed, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatal(err)
	}
	if hashed == "s3cret!" {
		t.Error("password must not be stored in clear")
	}
	if !ValidatePassword(hashed, "s3cret!") {
		t.Error("the original password must validate")
	}
	if ValidatePassword(hashed, "wrong") {
		t.Error("a wrong password must not validate")
	}
}

func TestResponseEnvelopes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		ErrorResponse(c, "droits insuffisants", http.StatusForbidden)

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d", w.Code)
		}
		var resp Response
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusForbidden || resp.Message != "droits insuffisants" {
			t.Errorf("response = %+v", resp)
		}
	})

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		SuccessResponse(c, "utilisateur créé", http.StatusCreated)

		if w.Code != http.StatusCreated {
			t.Errorf("status = %d", w.Code)
		}
		var resp Response
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Message != "utilisateur créé" {
			t.Errorf("response = %+v", resp)
		}
	})
}
