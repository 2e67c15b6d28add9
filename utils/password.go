package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

// MakeInitials pravi inicijale iz imena, npr. "Ana Petrović" -> "AP".
func MakeInitials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	initials := strings.ToUpper(string([]rune(parts[0])[:1]))
	if len(parts) > 1 {
		initials += strings.ToUpper(string([]rune(parts[len(parts)-1])[:1]))
	}
	return initials
}
