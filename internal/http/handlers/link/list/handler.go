package list

import (
	"context"
	"net/http"

	"linkgate/internal/domain/models"
	"linkgate/internal/http/dto"
	"linkgate/internal/http/handlers/middlewares/auth"
	"linkgate/internal/http/httputils"
)

type ServiceLinks interface {
	GetByOwner(ctx context.Context, ownerID int64) ([]models.Link, error)
}

func HandlerLinkList(svc ServiceLinks, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		operatorID, ok := auth.OperatorIDFromContext(ctx)
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		ownerLinks, err := svc.GetByOwner(ctx, operatorID)
		if err != nil {
			httputils.WriteJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}

		res := make([]dto.LinkResponse, 0, len(ownerLinks))
		for _, link := range ownerLinks {
			res = append(res, dto.LinkResponse{
				Code:        link.Code,
				Destination: link.Destination,
				Label:       link.Label,
				ShortURL:    httputils.BuildShortURL(baseURL, link.Code),
				CreatedAt:   link.CreatedAt,
			})
		}

		httputils.WriteJSONResponse(w, http.StatusOK, res)
	}
}
