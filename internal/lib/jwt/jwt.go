// Package jwt реализует выпуск и разбор JWT-токенов с пользовательскими claim-полями.
//
// Maker описывает интерфейс для генерации и проверки токенов,
// MakerImpl — реализация на секретном ключе HS256 со сроком жизни из конфига.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и разбора JWT-токенов.
type Maker interface {
	// GenerateToken выпускает токен для пользователя с указанным id и именем.
	GenerateToken(userID int, username string) (string, error)
	// ParseToken проверяет подпись и срок токена и возвращает claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker на секретном ключе и TTL токена.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker создаёт новый MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
