package campaign

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound    = errors.New("campanha não encontrada")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidRequest      = errors.New("requisição inválida")
	ErrInvalidDates        = errors.New("datas da campanha inválidas")
	ErrInvalidStatus       = errors.New("status de campanha inválido")
	ErrInvalidCategory     = errors.New("categoria de fonte inválida")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID          = errors.New("erro ao gerar ID")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error
	Code       string
	CampaignID string
	Details    string
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCampaignErrorWithID(err error, code string, campaignID string, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
