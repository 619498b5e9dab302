package psych

import "errors"

// Errores centinela del motor. El caller distingue entrada inválida
// (edad negativa, adherencia fuera de rango) de lookups desconocidos.
var (
	ErrInvalidInput = errors.New("psych: invalid input")
	ErrNotFound     = errors.New("psych: not found")
)
