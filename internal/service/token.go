package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// 32 байта = 256 бит энтропии, с запасом против подбора и коллизий
const tokenBytes = 32

// GenerateToken генерирует URL-безопасный одноразовый токен для QR-кода.
// Ошибка источника энтропии невосстановима - вызывающий должен падать
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
