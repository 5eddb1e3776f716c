package shortcode

import (
	"crypto/rand"
	"math/big"
)

const (
	codeLength  = 6
	codeLetters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// Generate возвращает кандидата короткого кода.
// Уникальность НЕ гарантируется - за это отвечает хранилище,
// вызывающий обязан обработать models.ErrCodeTaken и перегенерировать.
func Generate() string {
	b := make([]byte, codeLength)
	letterCount := big.NewInt(int64(len(codeLetters)))

	for i := range b {
		n, _ := rand.Int(rand.Reader, letterCount)
		b[i] = codeLetters[n.Int64()]
	}
	return string(b)
}
