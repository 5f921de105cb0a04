package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"partnerline/internal/app"
	"partnerline/internal/db"
	"partnerline/internal/events"
	"partnerline/internal/export"
	"partnerline/internal/repo"
	"partnerline/internal/sample"
)

// Config for the HTTP API handler.
type Config struct {
	App      *app.App
	BasePath string
}

type apiErrorBody struct {
	Code    string         `json:"code" example:"duplicate_key"`
	Message string         `json:"message" example:"collaborators id sme-acme: duplicate key"`
	Details map[string]any `json:"details,omitempty" jsonschema:"type=object,additionalProperties=true"`
}

// apiError models the error envelope.
type apiError struct {
	status int
	Body   apiErrorBody `json:"error"`
}

func (e *apiError) GetStatus() int { return e.status }
func (e *apiError) Error() string  { return e.Body.Message }

// New returns an HTTP handler exposing the Partnerline API.
func New(cfg Config) (http.Handler, error) {
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "/v0"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	huma.DefaultArrayNullable = false
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		return newAPIError(status, "", msg, nil)
	}
	huma.NewErrorWithContext = func(_ huma.Context, status int, msg string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity && strings.Contains(strings.ToLower(msg), "validation") {
			status = http.StatusBadRequest
		}
		var details map[string]any
		if len(errs) > 0 {
			details = map[string]any{"errors": errs}
		}
		return newAPIError(status, "", msg, details)
	}

	router := chi.NewRouter()
	hcfg := huma.DefaultConfig("Partnerline API", "0.1.0")
	hcfg.OpenAPIPath = "/openapi"
	hcfg.DocsPath = "" // custom Swagger UI below
	api := humachi.New(router, hcfg)
	group := huma.NewGroup(api, basePath)

	registerDocs(router, basePath)
	registerHealth(group)
	registerCounts(group, cfg.App)
	registerCollections(group, cfg.App)
	registerSample(group, cfg.App)
	registerData(group, cfg.App)
	registerEvents(group, cfg.App)
	registerOpenAPI(router, api, basePath)

	return router, nil
}

func newAPIError(status int, code, message string, details map[string]any) huma.StatusError {
	if code == "" {
		code = defaultCodeForStatus(status)
	}
	return &apiError{
		status: status,
		Body: apiErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

func handleError(err error) huma.StatusError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, db.ErrNotFound):
		return newAPIError(http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, db.ErrDuplicateKey):
		return newAPIError(http.StatusConflict, "duplicate_key", err.Error(), nil)
	case errors.Is(err, db.ErrNotInitialized):
		return newAPIError(http.StatusConflict, "not_initialized", err.Error(), nil)
	}
	msg := err.Error()
	lowered := strings.ToLower(msg)
	if strings.Contains(lowered, "invalid") || strings.Contains(lowered, "missing") || strings.Contains(lowered, "required") {
		return newAPIError(http.StatusBadRequest, "bad_request", msg, nil)
	}
	return newAPIError(http.StatusInternalServerError, "internal_error", "internal error", map[string]any{"error": msg})
}

func defaultCodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusUnprocessableEntity:
		return "validation_failed"
	case http.StatusInternalServerError:
		return "internal_error"
	default:
		return strings.ToLower(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	}
}

func registerDocs(r chi.Router, basePath string) {
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, swaggerHTML(basePath))
	})
}

func registerOpenAPI(r chi.Router, api huma.API, basePath string) {
	var once sync.Once
	var spec []byte
	specPath := path.Join(basePath, "openapi.json")
	r.Get(specPath, func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() {
			spec, _ = json.Marshal(api.OpenAPI())
		})
		w.Header().Set("Content-Type", "application/json")
		w.Write(spec)
	})
}

func swaggerHTML(basePath string) string {
	specURL := path.Join("/", path.Join(basePath, "openapi.json"))
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Partnerline API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
    <script>
      window.onload = () => {
        SwaggerUIBundle({
          url: '%s',
          dom_id: '#swagger-ui'
        });
      };
    </script>
  </body>
</html>`, specURL)
}

func registerHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body map[string]string `json:"body"`
	}, error) {
		return &struct {
			Body map[string]string `json:"body"`
		}{Body: map[string]string{"status": "ok"}}, nil
	})
}

func registerCounts(api huma.API, a *app.App) {
	huma.Register(api, huma.Operation{
		OperationID: "data-counts",
		Method:      http.MethodGet,
		Path:        "/counts",
		Summary:     "Per-kind record counts",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body repo.DataCounts `json:"body"`
	}, error) {
		counts, err := a.Repos.Counts(ctx)
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body repo.DataCounts `json:"body"`
		}{Body: counts}, nil
	})
}

func registerCollections(api huma.API, a *app.App) {
	registerCollection(api, "departments", a.Repos.Departments)
	registerCollection(api, "projects", a.Repos.Projects)
	registerCollection(api, "collaborators", a.Repos.Collaborators)
	registerCollection(api, "sme-partners", a.Repos.SMEPartners)
	registerCollection(api, "spis", a.Repos.SPIs)
	registerCollection(api, "objectives", a.Repos.Objectives)
	registerCollection(api, "initiatives", a.Repos.Initiatives)
	registerCollection(api, "sitreps", a.Repos.SitReps)
}

// registerCollection wires the uniform list/get/create/delete surface for
// one collection. Record bodies are the domain types themselves.
func registerCollection[T any](api huma.API, name string, col repo.Collection[T]) {
	huma.Register(api, huma.Operation{
		OperationID: "list-" + name,
		Method:      http.MethodGet,
		Path:        "/" + name,
		Summary:     "List " + name,
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body []T `json:"body"`
	}, error) {
		items, err := col.GetAll(ctx)
		if err != nil {
			return nil, handleError(err)
		}
		if items == nil {
			items = []T{}
		}
		return &struct {
			Body []T `json:"body"`
		}{Body: items}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-" + name,
		Method:      http.MethodGet,
		Path:        "/" + name + "/{id}",
		Summary:     "Get one of " + name,
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID string `path:"id"`
	}) (*struct {
		Body T `json:"body"`
	}, error) {
		v, ok, err := col.Get(ctx, input.ID)
		if err != nil {
			return nil, handleError(err)
		}
		if !ok {
			return nil, newAPIError(http.StatusNotFound, "not_found", fmt.Sprintf("%s %s not found", name, input.ID), nil)
		}
		return &struct {
			Body T `json:"body"`
		}{Body: v}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-" + name,
		Method:        http.MethodPost,
		Path:          "/" + name,
		Summary:       "Create one of " + name,
		DefaultStatus: http.StatusCreated,
		Errors: []int{
			http.StatusBadRequest,
			http.StatusConflict,
			http.StatusInternalServerError,
		},
	}, func(ctx context.Context, input *struct {
		Body T `json:"body"`
	}) (*struct {
		Body T `json:"body"`
	}, error) {
		if err := col.Add(ctx, input.Body); err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body T `json:"body"`
		}{Body: input.Body}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-" + name,
		Method:      http.MethodDelete,
		Path:        "/" + name + "/{id}",
		Summary:     "Delete one of " + name,
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID string `path:"id"`
	}) (*struct{}, error) {
		if err := col.Delete(ctx, input.ID); err != nil {
			return nil, handleError(err)
		}
		return &struct{}{}, nil
	})
}

func registerSample(api huma.API, a *app.App) {
	huma.Register(api, huma.Operation{
		OperationID: "generate-sample-data",
		Method:      http.MethodPost,
		Path:        "/sample/generate",
		Summary:     "Generate sample data",
		Description: "Generates a referentially consistent dataset. Requested counts above a generator's pool are capped with a notice in the response.",
		Errors: []int{
			http.StatusBadRequest,
			http.StatusConflict,
			http.StatusInternalServerError,
		},
	}, func(ctx context.Context, input *struct {
		Body sample.Request `json:"body"`
	}) (*struct {
		Body sample.Result `json:"body"`
	}, error) {
		res, err := a.Coordinator.Generate(ctx, input.Body)
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body sample.Result `json:"body"`
		}{Body: res}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "sample-defaults",
		Method:      http.MethodGet,
		Path:        "/sample/defaults",
		Summary:     "Effective default quantities",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body sample.Quantities `json:"body"`
	}, error) {
		return &struct {
			Body sample.Quantities `json:"body"`
		}{Body: a.Coordinator.Defaults}, nil
	})
}

func registerData(api huma.API, a *app.App) {
	huma.Register(api, huma.Operation{
		OperationID: "clear-data",
		Method:      http.MethodPost,
		Path:        "/data/clear",
		Summary:     "Clear all data",
		Description: "Destroys every collection and re-initializes the store to an empty, ready state.",
		Errors:      []int{http.StatusInternalServerError},
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body map[string]string `json:"body"`
	}, error) {
		if err := a.ClearData(ctx); err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body map[string]string `json:"body"`
		}{Body: map[string]string{"status": "cleared"}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "export-data",
		Method:      http.MethodGet,
		Path:        "/data/export",
		Summary:     "Export all collections",
		Errors:      []int{http.StatusInternalServerError},
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body export.Snapshot `json:"body"`
	}, error) {
		snap, err := export.Build(ctx, a.Repos, time.Now())
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body export.Snapshot `json:"body"`
		}{Body: snap}, nil
	})
}

func registerEvents(api huma.API, a *app.App) {
	huma.Register(api, huma.Operation{
		OperationID: "list-events",
		Method:      http.MethodGet,
		Path:        "/events",
		Summary:     "Recent audit events",
	}, func(ctx context.Context, input *struct {
		Limit int `query:"limit" default:"20"`
	}) (*struct {
		Body []events.Event `json:"body"`
	}, error) {
		items, err := a.Events.Latest(ctx, input.Limit)
		if err != nil {
			return nil, handleError(err)
		}
		if items == nil {
			items = []events.Event{}
		}
		return &struct {
			Body []events.Event `json:"body"`
		}{Body: items}, nil
	})
}
