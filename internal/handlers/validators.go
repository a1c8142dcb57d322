package handlers

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	clientIDRe = regexp.MustCompile(`^C[A1BC2DE3FG5H6I7J4K8L9MN0OPQRSTUVWXYZ]{5}$`)

	registerOnce sync.Once
	registerErr  error
	validate     *validator.Validate
)

func isClientID(fl validator.FieldLevel) bool {
	return clientIDRe.MatchString(fl.Field().String())
}

// registerValidators installs the custom clientid tag on gin's validator and keeps a handle
// to it for validating path parameters.
func registerValidators() (*validator.Validate, error) {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			v = validator.New()
		}
		if err := v.RegisterValidation("clientid", isClientID); err != nil {
			registerErr = fmt.Errorf("failed to register clientid validator: %w", err)
			return
		}
		validate = v
	})
	return validate, registerErr
}

// validateVar reports false when the validator is unavailable; RegisterRoutes fails first in that case.
func validateVar(value, tag string) bool {
	v, err := registerValidators()
	if err != nil {
		return false
	}
	return v.Var(value, tag) == nil
}

func validEmail(email string) bool {
	return validateVar(email, "required,email")
}

func validClientID(clientID string) bool {
	return validateVar(clientID, "required,clientid")
}
