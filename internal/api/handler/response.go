package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-pacing-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-pacing-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-pacing-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-pacing-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz erros das camadas de serviço para o formato padrão da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	var campaignErr *campaign.CampaignError
	if errors.As(err, &campaignErr) {
		var details any
		if campaignErr.CampaignID != "" {
			details = map[string]any{"campaign_id": campaignErr.CampaignID}
		}
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), details)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(fallbackMessage)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
}
