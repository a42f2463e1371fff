package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
	"github.com/vfg2006/campaign-pacing-api/internal/usecases/forecasting"
	"github.com/vfg2006/campaign-pacing-api/internal/usecases/ranking"
	"github.com/vfg2006/campaign-pacing-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-pacing-api/pkg/utils"
)

// GetCampaignPacing calcula o pacing ao vivo de uma campanha.
// Query: exclude_categories=vendor,other e now=RFC3339|YYYY-MM-DD.
func GetCampaignPacing(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		query := r.URL.Query()

		filters := domain.PacingFilters{}
		if excluded := query.Get("exclude_categories"); excluded != "" {
			for _, category := range strings.Split(excluded, ",") {
				if category = strings.TrimSpace(category); category != "" {
					filters.ExcludeCategories = append(filters.ExcludeCategories, domain.SourceCategory(category))
				}
			}
		}

		now, err := utils.ParseInstant(query.Get("now"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro now inválido", map[string]string{"now": query.Get("now")})
			return
		}
		filters.Now = now

		response, err := service.GetCampaignPacing(r.Context(), id, filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular pacing da campanha")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func GetPacingHistory(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		query := r.URL.Query()

		startDate, err := utils.ParseDate(query.Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de data inválido. Use YYYY-MM-DD", map[string]string{"start_date": query.Get("start_date")})
			return
		}

		endDate, err := utils.ParseDate(query.Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de data inválido. Use YYYY-MM-DD", map[string]string{"end_date": query.Get("end_date")})
			return
		}

		history, err := service.GetPacingHistory(r.Context(), id, startDate, endDate)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar histórico de pacing")
			return
		}

		writeJSON(w, http.StatusOK, history)
	}
}

// ComputePacing executa o motor diretamente sobre um PacingInput enviado no corpo
func ComputePacing(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.PacingInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		writeJSON(w, http.StatusOK, service.ComputePacing(r.Context(), input))
	}
}

// GetPacingRanking retorna o ranking de campanhas por atingimento projetado
func GetPacingRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de data inválido. Use YYYY-MM-DD", nil)
			return
		}

		result, err := service.GetPacingRanking(r.Context(), date)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar ranking de pacing")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
