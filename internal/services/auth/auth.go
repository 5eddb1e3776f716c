package auth

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"linkgate/internal/domain/models"

	"github.com/golang-jwt/jwt/v4"
)

//go:generate mockgen -source=auth.go -destination=../../mocks/mock_operator_storage.go -package=mocks
type OperatorStorage interface {
	OperatorCreate(ctx context.Context, op models.Operator) (models.Operator, error)
	OperatorGetByID(ctx context.Context, id int64) (models.Operator, error)
}

// Authentication выдает и проверяет cookie-токены операторов.
// Ядро сервиса операторов не создает - сюда вынесен весь identity-слой.
type Authentication struct {
	storage   OperatorStorage
	secretKey []byte
	accessExp time.Duration
}

func NewAuthentication(storage OperatorStorage, secretKey string, accessExp time.Duration) (*Authentication, error) {
	key, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil || len(key) < 32 {
		return nil, fmt.Errorf("invalid JWT secret key: must be at least 32 bytes when decoded")
	}

	return &Authentication{
		storage:   storage,
		secretKey: key,
		accessExp: accessExp,
	}, nil
}

// Register создает нового оператора и сразу выдает ему токен.
func (a *Authentication) Register(ctx context.Context) (models.Operator, string, time.Time, error) {
	op := models.Operator{CreatedAt: time.Now().UTC()}

	created, err := a.storage.OperatorCreate(ctx, op)
	if err != nil {
		return models.Operator{}, "", time.Time{}, fmt.Errorf("failed to create operator: %w", err)
	}

	token, expiry, err := a.jwtGenerate(created.ID)
	if err != nil {
		return created, "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return created, token, expiry, nil
}

// ValidateAndGetOperator проверяет токен и возвращает оператора из хранилища.
func (a *Authentication) ValidateAndGetOperator(ctx context.Context, jwtToken string) (models.Operator, error) {
	operatorID, err := a.getOperatorID(jwtToken)
	if err != nil {
		return models.Operator{}, fmt.Errorf("failed to validate token: %w", err)
	}

	op, err := a.storage.OperatorGetByID(ctx, operatorID)
	if err != nil {
		return models.Operator{}, fmt.Errorf("failed to get operator: %w", err)
	}

	return op, nil
}

type Claims struct {
	jwt.RegisteredClaims
	OperatorID int64
}

func (a *Authentication) jwtGenerate(operatorID int64) (string, time.Time, error) {
	expiry := time.Now().Add(a.accessExp)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		OperatorID: operatorID,
	}
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	token, err := newToken.SignedString(a.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiry, nil
}

// Одновременно здесь происходит валидация токена
func (a *Authentication) getOperatorID(tokenString string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return a.secretKey, nil
		})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	return claims.OperatorID, nil
}
