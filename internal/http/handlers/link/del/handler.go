package del

import (
	"context"
	"errors"
	"net/http"

	"linkgate/internal/domain/models"
	"linkgate/internal/http/handlers/middlewares/auth"
	"linkgate/internal/http/httputils"

	"github.com/gorilla/mux"
)

type ServiceLinks interface {
	Delete(ctx context.Context, ownerID int64, code string) error
}

func HandlerLinkDelete(svc ServiceLinks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		operatorID, ok := auth.OperatorIDFromContext(ctx)
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		code := mux.Vars(r)["code"]

		if err := svc.Delete(ctx, operatorID, code); err != nil {
			switch {
			case errors.Is(err, models.ErrForbidden):
				httputils.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
			case errors.Is(err, models.ErrUnfound):
				httputils.WriteJSONError(w, http.StatusNotFound, models.ErrUnfound.Error())
			case errors.Is(err, models.ErrInvalidData):
				httputils.WriteJSONError(w, http.StatusBadRequest, err.Error())
			default:
				httputils.WriteJSONError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
