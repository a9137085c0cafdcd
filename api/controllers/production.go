package controllers

import (
	"net/http"

	"github.com/autoflexhq/inventory-console/api/responses"
	productionsvc "github.com/autoflexhq/inventory-console/internal/production"
	pkgerrors "github.com/autoflexhq/inventory-console/pkg/errors"
	"github.com/autoflexhq/inventory-console/pkg/logger"
)

// ProductionSuggestions renders the server-computed production plan.
func ProductionSuggestions(svc productionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "production service unavailable"))
			return
		}

		suggestion, err := svc.Suggest(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, suggestion)
	}
}
