package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hirecentive/dashboard/models"
	"github.com/hirecentive/dashboard/repositories"
	"github.com/hirecentive/dashboard/userctx"
)

// AuditLogger middleware records all POST/PUT/PATCH/DELETE requests together
// with the response status. The entry is written after the handler returns.
func AuditLogger(auditRepo repositories.AuditRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutation(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			entry := &models.AuditLogEntry{
				Operator:  userctx.GetOperator(r.Context()),
				Method:    r.Method,
				Path:      r.URL.Path,
				UserAgent: r.UserAgent(),
				IPAddress: getIPAddress(r),
				FormData:  captureFormData(r),
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			entry.StatusCode = ww.Status()
			if entry.StatusCode == 0 {
				entry.StatusCode = http.StatusOK
			}

			if err := auditRepo.Create(context.WithoutCancel(r.Context()), entry); err != nil {
				logger.Error("failed to create audit log entry",
					zap.String("method", entry.Method),
					zap.String("path", entry.Path),
					zap.Error(err),
				)
			}
		})
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// captureFormData captures form data as JSON string
func captureFormData(r *http.Request) string {
	// Parse form data
	if err := r.ParseForm(); err != nil {
		return ""
	}
	if len(r.Form) == 0 {
		return ""
	}

	// Convert to map
	formMap := make(map[string]interface{})
	for key, values := range r.Form {
		if len(values) == 1 {
			formMap[key] = values[0]
		} else {
			formMap[key] = values
		}
	}

	// Convert to JSON
	jsonData, err := json.Marshal(formMap)
	if err != nil {
		return ""
	}

	return string(jsonData)
}
