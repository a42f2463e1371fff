package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-pacing-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-pacing-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypePacingSnapshot = "pacing-snapshot"
	CronJobTypeAll            = "all"
)

// SyncJob é um job agendado que também pode ser disparado manualmente
type SyncJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	PacingSnapshotSyncService SyncJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypePacingSnapshot, CronJobTypeAll:
			if services.PacingSnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshots de pacing não disponível", nil)
				return
			}

			if !services.PacingSnapshotSyncService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "Geração de snapshots de pacing já em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: pacing-snapshot, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("job_type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.PacingSnapshotSyncService != nil {
			status[CronJobTypePacingSnapshot] = services.PacingSnapshotSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
