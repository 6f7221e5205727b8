package service

import "errors"

// Типизированные причины отказа. Хэндлеры отображают их в HTTP-статусы,
// ни одна ошибка не возвращается вызывающему "голой".
var (
	ErrInvalidIncidentType = errors.New("invalid incident type")
	ErrAddressRequired     = errors.New("address is required")
	ErrUnresolvableAddress = errors.New("could not geocode address")
	ErrReportThrottled     = errors.New("duplicate report (cooldown active)")

	ErrInvalidEmail       = errors.New("valid email required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrVolunteerExists          = errors.New("already registered as volunteer")
	ErrInvalidVolunteerCategory = errors.New("invalid category")

	ErrInvalidAidUrgency = errors.New("invalid urgency")
)
