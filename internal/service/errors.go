package service

import "errors"

var ErrPersonaNotFound = errors.New("persona not found")
