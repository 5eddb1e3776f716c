package list

import (
	"context"
	"errors"
	"net/http"

	"linkgate/internal/domain/models"
	"linkgate/internal/http/dto"
	"linkgate/internal/http/handlers/middlewares/auth"
	"linkgate/internal/http/httputils"
)

type ServiceConsole interface {
	ListSubmissions(ctx context.Context, ownerID int64, codeFilter string) ([]models.SubmissionView, error)
}

// HandlerSubmissionList отдает захваченные записи оператора,
// опционально суженные query-параметром code.
func HandlerSubmissionList(svc ServiceConsole) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		operatorID, ok := auth.OperatorIDFromContext(ctx)
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		codeFilter := r.URL.Query().Get("code")

		views, err := svc.ListSubmissions(ctx, operatorID, codeFilter)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrForbidden):
				httputils.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
			case errors.Is(err, models.ErrInvalidData):
				httputils.WriteJSONError(w, http.StatusBadRequest, err.Error())
			default:
				httputils.WriteJSONError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		res := make([]dto.SubmissionResponse, 0, len(views))
		for _, view := range views {
			fields := make([]dto.SubmissionFieldResponse, 0, len(view.Fields))
			for _, f := range view.Fields {
				fields = append(fields, dto.SubmissionFieldResponse{Name: f.Name, Value: f.Value})
			}
			res = append(res, dto.SubmissionResponse{
				ID:         view.ID.String(),
				Code:       view.Code,
				Label:      view.LinkLabel,
				Fields:     fields,
				RecordedAt: view.RecordedAt,
			})
		}

		httputils.WriteJSONResponse(w, http.StatusOK, res)
	}
}
