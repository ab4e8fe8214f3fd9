package tokens

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/seosites/seosites/backend/go-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testAdmin(role string) *models.Admin {
	a := &models.Admin{Email: "admin@example.com", Role: role}
	a.ID = primitive.NewObjectID()
	return a
}

func TestGenerateAccessToken_ValidAndClaims(t *testing.T) {
	iss := NewIssuer("test-secret-32-bytes-should-be-long-enough", 2*time.Minute)
	a := testAdmin(models.RoleAdmin)

	tokenStr, err := iss.GenerateAccessToken(a)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	parsed, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret-32-bytes-should-be-long-enough"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("failed to parse token: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims type assertion failed")
	}
	if claims["sub"] != a.ID.Hex() {
		t.Fatalf("unexpected sub claim: got=%v want=%v", claims["sub"], a.ID.Hex())
	}
	if claims["role"] != "admin" {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}

	p, err := iss.Verify(context.Background(), tokenStr)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if p.Subject != a.ID.Hex() || p.Role != "admin" {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestVerify_Expired(t *testing.T) {
	iss := NewIssuer("another-secret-32-bytes-longgggg", time.Hour)
	issuedAt := time.Now()
	iss.now = func() time.Time { return issuedAt }
	tokenStr, err := iss.GenerateAccessToken(testAdmin(models.RoleEditor))
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}
	iss.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if _, err := iss.Verify(context.Background(), tokenStr); err == nil {
		t.Fatalf("expected verify to fail after expiry")
	}
}

func TestVerify_WrongSecretFails(t *testing.T) {
	tokenStr, err := NewIssuer("secret-one-32-bytes-xxxxxxxxxxxxxxxx", time.Minute).GenerateAccessToken(testAdmin(models.RoleAdmin))
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}
	if _, err := NewIssuer("different-secret-xxxxxxxxxxxxxxxx", time.Minute).Verify(context.Background(), tokenStr); err == nil {
		t.Fatalf("expected verify to fail with wrong secret")
	}
}

func TestVerify_Malformed(t *testing.T) {
	if _, err := NewIssuer("x", time.Minute).Verify(context.Background(), "not.a.jwt"); err == nil {
		t.Fatalf("expected verify to fail for malformed token")
	}
}

func TestVerify_RejectsAlgNone(t *testing.T) {
	claims := jwt.MapClaims{"sub": "abc", "role": "admin", "exp": time.Now().Add(time.Minute).Unix()}
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := NewIssuer("secret", time.Minute).Verify(context.Background(), s); err == nil {
		t.Fatalf("expected alg=none token to be rejected")
	}
}

func TestVerify_Tampered(t *testing.T) {
	iss := NewIssuer("tamper-secret-32-bytes-xxxxxxxxxxx", time.Minute)
	tokenStr, err := iss.GenerateAccessToken(testAdmin(models.RoleEditor))
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}
	parts := strings.Split(tokenStr, ".")
	forged, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x", "role": "admin"}).SigningString()
	tampered := strings.Split(forged, ".")[0] + "." + strings.Split(forged, ".")[1] + "." + parts[2]
	if _, err := iss.Verify(context.Background(), tampered); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}
}

func TestMissingSecret(t *testing.T) {
	if _, err := NewIssuer("", time.Minute).GenerateAccessToken(testAdmin(models.RoleAdmin)); err == nil {
		t.Fatalf("expected error without secret")
	}
}
