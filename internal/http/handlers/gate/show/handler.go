package show

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	"linkgate/internal/domain/models"
	"linkgate/internal/http/httputils"

	"github.com/gorilla/mux"
)

type ServiceLinks interface {
	Resolve(ctx context.Context, code string) (models.Link, error)
}

// Страница-прокладка без оформления: форма постит на тот же код,
// рендеринг красивого варианта - забота фронта.
var gateTemplate = template.Must(template.New("gate").Parse(`<!DOCTYPE html>
<html>
<head><title>One more step</title></head>
<body>
<form method="POST" action="/{{.Code}}">
  <label>Name <input name="name" type="text"></label>
  <label>Email <input name="email" type="email"></label>
  <button type="submit">Continue</button>
</form>
</body>
</html>
`))

func HandlerGateShow(svc ServiceLinks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		code := mux.Vars(r)["code"]

		link, err := svc.Resolve(ctx, code)
		if err != nil {
			if errors.Is(err, models.ErrUnfound) || errors.Is(err, models.ErrInvalidData) {
				httputils.WriteTextError(w, http.StatusNotFound, "link not found")
				return
			}
			httputils.WriteTextError(w, http.StatusInternalServerError, "temporary failure")
			return
		}

		w.Header().Set(httputils.HeaderContentType, httputils.MIMETextHTML)
		w.WriteHeader(http.StatusOK)
		_ = gateTemplate.Execute(w, struct{ Code string }{Code: link.Code})
	}
}
