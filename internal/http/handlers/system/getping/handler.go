package getping

import (
	"context"
	"net/http"

	"linkgate/internal/http/httputils"
)

type ServiceLinks interface {
	PingStorage(ctx context.Context) error
}

func HandlerPing(svc ServiceLinks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.PingStorage(r.Context()); err != nil {
			httputils.WriteTextError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
