package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/autoflexhq/inventory-console/api/responses"
	"github.com/autoflexhq/inventory-console/api/validators"
	"github.com/autoflexhq/inventory-console/internal/bom"
	pkgerrors "github.com/autoflexhq/inventory-console/pkg/errors"
	"github.com/autoflexhq/inventory-console/pkg/logger"
)

type openSessionRequest struct {
	ProductID int64 `json:"productId" validate:"required,min=1"`
}

type openSessionResponse struct {
	SessionID string       `json:"sessionId"`
	Snapshot  bom.Snapshot `json:"snapshot"`
}

type addMaterialRequest struct {
	RawMaterialID int64           `json:"rawMaterialId" validate:"required,min=1"`
	Quantity      decimal.Decimal `json:"quantity"`
}

type quantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// OpenBOMSession creates an editor session for one product and performs
// its initial load. A failed load still registers the session so the
// caller can render the error and retry with a refresh; the failure is
// reported inside the snapshot rather than as an error response.
func OpenBOMSession(registry *bom.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bom registry unavailable"))
			return
		}

		var payload openSessionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, editor, err := registry.Open(r.Context(), payload.ProductID)
		if err != nil && logg != nil {
			ctx := logg.WithSessionID(r.Context(), id)
			logg.Warn(ctx, "bom.session.open_failed")
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, openSessionResponse{
			SessionID: id,
			Snapshot:  editor.Snapshot(),
		})
	}
}

// GetBOMSession renders the current editor state.
func GetBOMSession(registry *bom.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		editor, err := sessionEditor(registry, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, editor.Snapshot())
	}
}

// RefreshBOMSession re-synchronizes the editor from the inventory API.
func RefreshBOMSession(registry *bom.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		editor, err := sessionEditor(registry, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := editor.Refresh(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, editor.Snapshot())
	}
}

// AddBOMMaterial links a raw material to the session's product. Requests
// that fail the editor's preconditions are absorbed without effect and the
// unchanged snapshot is returned.
func AddBOMMaterial(registry *bom.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		editor, err := sessionEditor(registry, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addMaterialRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := editor.AddAssociation(r.Context(), payload.RawMaterialID, payload.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, editor.Snapshot())
	}
}

// EditBOMDraft records an edited quantity for one row without persisting
// it.
func EditBOMDraft(registry *bom.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		editor, err := sessionEditor(registry, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		materialID, err := validators.ParsePathID(r, "materialID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload quantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		editor.EditDraft(materialID, payload.Quantity)
		responses.WriteSuccess(w, editor.Snapshot())
	}
}

// SaveBOMMaterial persists an edited quantity for one row. Unchanged or
// non-positive values are absorbed without a remote call.
func SaveBOMMaterial(registry *bom.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		editor, err := sessionEditor(registry, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		materialID, err := validators.ParsePathID(r, "materialID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload quantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := editor.UpdateQuantity(r.Context(), materialID, payload.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, editor.Snapshot())
	}
}

// RemoveBOMMaterial unlinks one raw material from the session's product.
func RemoveBOMMaterial(registry *bom.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		editor, err := sessionEditor(registry, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		materialID, err := validators.ParsePathID(r, "materialID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := editor.RemoveAssociation(r.Context(), materialID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, editor.Snapshot())
	}
}

// CloseBOMSession discards the session and every unsaved draft.
func CloseBOMSession(registry *bom.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bom registry unavailable"))
			return
		}

		sessionID, err := validators.ParseSessionID(r, "sessionID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if !registry.Close(r.Context(), sessionID) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "session not found"))
			return
		}
		responses.WriteSuccess(w, map[string]bool{"closed": true})
	}
}

func sessionEditor(registry *bom.Registry, r *http.Request) (*bom.Editor, error) {
	if registry == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "bom registry unavailable")
	}
	sessionID, err := validators.ParseSessionID(r, "sessionID")
	if err != nil {
		return nil, err
	}
	editor, ok := registry.Get(sessionID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
	}
	return editor, nil
}
