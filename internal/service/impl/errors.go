package impl

import (
	"fmt"

	"telemetry/internal/domain"
)

var (
	ErrEmptyEmail      = fmt.Errorf("%w: email is required", domain.ErrValidation)
	ErrInvalidEmail    = fmt.Errorf("%w: email is not a valid address", domain.ErrValidation)
	ErrEmptyPassword   = fmt.Errorf("%w: password is required", domain.ErrValidation)
	ErrEmptySerial     = fmt.Errorf("%w: serialNumber is required", domain.ErrValidation)
	ErrEmptyHappenedAt = fmt.Errorf("%w: happenedAt is required", domain.ErrValidation)
)
