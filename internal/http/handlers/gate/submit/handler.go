package submit

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"linkgate/internal/domain/models"
	"linkgate/internal/http/httputils"

	"github.com/gorilla/mux"
)

type ServiceLinks interface {
	Resolve(ctx context.Context, code string) (models.Link, error)
}

type ServiceRecorder interface {
	Record(ctx context.Context, code string, fields []models.Field) (models.Submission, error)
}

const maxBodySize = 64 * 1024

// HandlerGateSubmit записывает поля формы и уводит посетителя на destination.
// Запись и redirect идут последовательно: без записи redirect не случится.
func HandlerGateSubmit(links ServiceLinks, recorder ServiceRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		code := mux.Vars(r)["code"]

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			httputils.WriteTextError(w, http.StatusBadRequest, "failed to read form")
			return
		}

		fields, err := parseFormOrdered(string(body))
		if err != nil || len(fields) == 0 {
			httputils.WriteTextError(w, http.StatusBadRequest, "empty form")
			return
		}

		if _, err := recorder.Record(ctx, code, fields); err != nil {
			if errors.Is(err, models.ErrInvalidCode) {
				httputils.WriteTextError(w, http.StatusNotFound, "link not found")
				return
			}
			httputils.WriteTextError(w, http.StatusInternalServerError, "temporary failure")
			return
		}

		link, err := links.Resolve(ctx, code)
		if err != nil {
			// Запись уже легла; сюда попадаем только если ссылку
			// конкурентно удалили между Record и Resolve
			httputils.WriteTextError(w, http.StatusNotFound, "link not found")
			return
		}

		httputils.WriteRedirect(w, link.Destination)
	}
}

// parseFormOrdered разбирает urlencoded тело сохраняя порядок полей.
// Стандартный url.ParseQuery возвращает map и порядок теряет.
func parseFormOrdered(body string) ([]models.Field, error) {
	var fields []models.Field
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}

		name, value, _ := strings.Cut(pair, "=")
		decodedName, err := url.QueryUnescape(name)
		if err != nil {
			return nil, err
		}
		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}
		if decodedName == "" {
			continue
		}

		fields = append(fields, models.Field{Name: decodedName, Value: decodedValue})
	}
	return fields, nil
}
