// Package weberror renders shared error responses for storefront modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/burjmall/storefront/internal/platform/logging"
	module "github.com/burjmall/storefront/internal/services/storefront/module"
	apperrors "github.com/burjmall/storefront/internal/services/storefront/platform/errors"
	"github.com/burjmall/storefront/internal/services/storefront/platform/httpx"
	"github.com/burjmall/storefront/internal/services/storefront/platform/i18n"
	"github.com/burjmall/storefront/internal/services/storefront/platform/pagerender"
	"github.com/burjmall/storefront/internal/services/storefront/templates"
	"go.uber.org/zap"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a shopper-safe localized error message.
func PublicMessage(loc i18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page, or the bare error state for
// HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := i18n.ForRequest(r)
	title := templates.ErrorPageTitle(statusCode, loc)
	err := pagerender.WriteModulePage(w, r, deps, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   templates.ErrorState(templates.ErrorView{Title: title}, loc),
	})
	if err != nil {
		logging.FromContext(httpx.RequestContext(r), deps.Logger).Warn("render error page failed", zap.Error(err))
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	loc, _ := i18n.ForRequest(r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
