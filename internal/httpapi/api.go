package httpapi

import (
	"qa-platform/internal/platform/logger"
	"qa-platform/internal/question"
)

type API struct {
	bank *question.Bank
	log  *logger.Logger
}

func NewAPI(bank *question.Bank, log *logger.Logger) *API {
	if log == nil {
		log = logger.Nop()
	}
	return &API{
		bank: bank,
		log:  log,
	}
}
