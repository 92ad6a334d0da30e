package auth

import (
	"github.com/caffeine-junky/jobconnect/internal/modules/account"
	"github.com/caffeine-junky/jobconnect/internal/pkg/apperr"
)

var (
	ErrInvalidCredentials = account.ErrInvalidCredentials
	ErrInvalidToken       = apperr.Unauthorized("Could not validate credentials")
)
