package create

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"linkgate/internal/domain/models"
	"linkgate/internal/http/dto"
	"linkgate/internal/http/handlers/middlewares/auth"
	"linkgate/internal/http/httputils"
)

type ServiceLinks interface {
	Create(ctx context.Context, ownerID int64, destination, label string) (models.Link, error)
}

func HandlerLinkCreate(svc ServiceLinks, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		operatorID, ok := auth.OperatorIDFromContext(ctx)
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		var req dto.LinkCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}

		if req.URL == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "url is required")
			return
		}

		link, err := svc.Create(ctx, operatorID, req.URL, req.Label)
		if err != nil {
			if errors.Is(err, models.ErrInvalidData) {
				httputils.WriteJSONError(w, http.StatusBadRequest, err.Error())
				return
			}
			httputils.WriteJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}

		res := dto.LinkCreateResponse{
			Code:     link.Code,
			ShortURL: httputils.BuildShortURL(baseURL, link.Code),
		}
		httputils.WriteJSONResponse(w, http.StatusCreated, res)
	}
}
