package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Error standardizes application errors. Message is the human-readable text
// surfaced to the caller inside the response envelope; HTTPStatus is the
// status the envelope is sent with.
type Error struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError constructs an Error.
func NewError(code, message string, status int) *Error {
	return &Error{Code: code, Message: message, HTTPStatus: status}
}

func NewValidationError(message string) error {
	return NewError("VALIDATION_FAILED", message, http.StatusBadRequest)
}

// NewNotFound builds a not-found error. Absent resources are reported inside
// a success=false envelope with HTTP 200, never through an error status.
func NewNotFound(message string) error {
	return NewError("NOT_FOUND", message, http.StatusOK)
}

func NewInternalError(err error) error {
	return &Error{
		Code:       "INTERNAL_ERROR",
		Message:    "Внутренняя ошибка сервера",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// Failures with fixed wording. The texts are part of the API contract.
var (
	ErrRequiredFields = NewValidationError("Не заполнены обязательные поля")
	ErrLoginFields    = NewValidationError("Не заполнены email и пароль")
	ErrEventFields    = NewValidationError("Не заполнены обязательные поля мероприятия")
	ErrSignupIDs      = NewValidationError("Не указаны ID мероприятия или волонтера")
	ErrCompletionArgs = NewValidationError("Не указаны ID регистрации или количество часов")
	ErrProfileID      = NewValidationError("Не указан ID пользователя")

	ErrEmailTaken = NewError("DUPLICATE_EMAIL",
		"Пользователь с таким email уже существует", http.StatusBadRequest)

	// Intentionally the same message for unknown email and wrong password.
	ErrInvalidCredentials = NewError("AUTHENTICATION_FAILED",
		"Неверный email или пароль", http.StatusBadRequest)

	ErrInvalidToken = NewError("AUTHENTICATION_FAILED",
		"Недействительный токен доступа", http.StatusBadRequest)

	ErrAlreadyRegistered = NewError("DUPLICATE_REGISTRATION",
		"Вы уже зарегистрированы на это мероприятие", http.StatusBadRequest)

	ErrAlreadyCompleted = NewError("REGISTRATION_COMPLETED",
		"Участие уже подтверждено", http.StatusBadRequest)

	ErrUserNotFound         = NewNotFound("Пользователь не найден")
	ErrRegistrationNotFound = NewNotFound("Регистрация не найдена")

	ErrMethodNotAllowed = NewError("METHOD_NOT_ALLOWED",
		"Метод не поддерживается", http.StatusMethodNotAllowed)
)

// FromError converts generic errors to *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{
		Code:       "INTERNAL_ERROR",
		Message:    "Внутренняя ошибка сервера",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
