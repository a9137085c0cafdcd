package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/autoflexhq/inventory-console/api/responses"
	"github.com/autoflexhq/inventory-console/api/validators"
	rawmaterialsvc "github.com/autoflexhq/inventory-console/internal/rawmaterials"
	pkgerrors "github.com/autoflexhq/inventory-console/pkg/errors"
	"github.com/autoflexhq/inventory-console/pkg/logger"
)

// ListRawMaterials renders the raw material catalog.
func ListRawMaterials(svc rawmaterialsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "raw material service unavailable"))
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func CreateRawMaterial(svc rawmaterialsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "raw material service unavailable"))
			return
		}

		var payload createRawMaterialRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		material, err := svc.Create(r.Context(), rawmaterialsvc.CreateInput{
			Code:          payload.Code,
			Name:          payload.Name,
			StockQuantity: payload.StockQuantity,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, material)
	}
}

func UpdateRawMaterial(svc rawmaterialsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "raw material service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "rawMaterialID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateRawMaterialRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		material, err := svc.Update(r.Context(), id, rawmaterialsvc.UpdateInput{
			Name:          payload.Name,
			StockQuantity: payload.StockQuantity,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, material)
	}
}

func DeleteRawMaterial(svc rawmaterialsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "raw material service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "rawMaterialID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

type createRawMaterialRequest struct {
	Code          string          `json:"code" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	StockQuantity decimal.Decimal `json:"stockQuantity"`
}

type updateRawMaterialRequest struct {
	Name          string          `json:"name" validate:"required"`
	StockQuantity decimal.Decimal `json:"stockQuantity"`
}
