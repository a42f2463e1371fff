package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
	"github.com/vfg2006/campaign-pacing-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-pacing-api/pkg/apiErrors"
)

func ListCampaigns(service campaign.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := make([]domain.CampaignStatus, 0)
		if filterStatus := r.URL.Query().Get("status"); filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				statuses = append(statuses, domain.CampaignStatus(strings.TrimSpace(status)))
			}
		}

		campaigns, err := service.ListCampaigns(r.Context(), statuses)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	}
}

func CreateCampaign(service campaign.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateCampaign(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar campanha")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetCampaign(service campaign.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		found, err := service.GetCampaign(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar campanha")
			return
		}

		writeJSON(w, http.StatusOK, found)
	}
}

func UpdateCampaign(service campaign.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		// O ID da URL prevalece sobre o corpo
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateCampaign(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar campanha")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func ListSources(service campaign.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		sources, err := service.ListSources(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar fontes da campanha")
			return
		}

		writeJSON(w, http.StatusOK, sources)
	}
}

func UpsertSource(service campaign.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpsertSourceMetricRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		source, err := service.UpsertSource(r.Context(), id, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar fonte da campanha")
			return
		}

		writeJSON(w, http.StatusOK, source)
	}
}
