package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces the value ADMIN_PASSWORD_HASH expects.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// compares a bcrypt hash with the plaintext.
func CheckPassword(hash, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// retrieves the admin set by JWTMiddleware.
func GetCurrentAdmin(c *gin.Context) (*Admin, bool) {
	v, exists := c.Get(currentAdminKey)
	if !exists {
		return nil, false
	}
	admin, ok := v.(*Admin)
	return admin, ok
}
