package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type (
	Operator struct {
		ID        int64  // Уникальный идентификатор
		Name      string // Отображаемое имя, заполняет внешний identity-слой
		CreatedAt time.Time
	}

	Link struct {
		ID          int64  // Уникальный идентификатор
		Code        string // Короткий код (aBcD12) - публичный идентификатор ссылки
		Destination string // Конечный URL на который уходит redirect
		OwnerID     int64  // Оператор создавший ссылку
		Label       string // Опциональная пометка, пустая строка = нет
		CreatedAt   time.Time
	}

	// Field - одна захваченная пара имя/значение.
	// Порядок полей в Submission значим, поэтому slice, а не map.
	Field struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	Submission struct {
		ID         uuid.UUID
		Code       string // Ссылка на Link.Code; Link может быть уже удален
		Fields     []Field
		RecordedAt time.Time
	}

	// SubmissionView - Submission вместе с label владеющей ссылки.
	// LinkLabel == nil если Link уже удален (orphan).
	SubmissionView struct {
		Submission
		LinkLabel *string
	}
)

var (
	ErrInvalidData = errors.New("invalid input data")
	ErrUnfound     = errors.New("link not found")
	ErrCodeTaken   = errors.New("code already taken")
	ErrInvalidCode = errors.New("submission for unknown code")
	ErrForbidden   = errors.New("operator does not own this code")
	ErrUnavailable = errors.New("storage unavailable")
)
