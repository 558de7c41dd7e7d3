package service

import "github.com/go-playground/validator/v10"

// validate checks the `validate` struct tags of request models.
var validate = validator.New(validator.WithRequiredStructEnabled())
