package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-trends-api/infrastructure/export"
	"github.com/vfg2006/ad-trends-api/internal/domain"
	"github.com/vfg2006/ad-trends-api/internal/usecases/cataloging"
	"github.com/vfg2006/ad-trends-api/internal/usecases/scraping"
	"github.com/vfg2006/ad-trends-api/pkg/apiErrors"
	"github.com/vfg2006/ad-trends-api/pkg/log"
	"github.com/vfg2006/ad-trends-api/pkg/middleware"
	"github.com/vfg2006/ad-trends-api/pkg/utils"
)

// ScrapeAds executa a coleta de anúncios do usuário autenticado.
// Toda falha responde 500, inclusive a ausência de credenciais.
func ScrapeAds(service scraping.Scraper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("ads: coleta sem credenciais válidas")
			apiErrors.WriteFatal(w, apiErrors.ErrMissingCredentials, scraping.ErrMissingOwner.Error(), nil)
			return
		}

		var req domain.ScrapeRequest
		if err := decodeOptionalBody(r, &req); err != nil {
			logger.WithError(err).Warn("ads: corpo da coleta inválido")
			apiErrors.WriteFatal(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		resp, err := service.ScrapeAds(r.Context(), claims.UserID, req.DateRange)
		if err != nil {
			writeScrapeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func writeScrapeError(w http.ResponseWriter, err error) {
	var scrapeErr *scraping.ScrapeError
	if errors.As(err, &scrapeErr) {
		apiErrors.WriteFatal(w, scrapeErr.Code, scrapeErr.Error(), nil)
		return
	}

	apiErrors.WriteFatal(w, apiErrors.ErrScrapeFailed, err.Error(), nil)
}

// decodeOptionalBody aceita corpo vazio e mantém os valores padrão do destino
func decodeOptionalBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ListAds lista os anúncios do usuário com os filtros da query string
func ListAds(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		filters, err := parseAdFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		ads, err := service.ListAds(r.Context(), claims.UserID, filters)
		if err != nil {
			writeCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ads)
	}
}

// CreateAd cadastra manualmente um anúncio para o usuário
func CreateAd(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.CreateAdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		ad, err := service.CreateAd(r.Context(), claims.UserID, &req)
		if err != nil {
			writeCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ad)
	}
}

// ExportAds devolve a planilha XLSX dos anúncios filtrados
func ExportAds(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		filters, err := parseAdFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		workbook, err := service.ExportAds(r.Context(), claims.UserID, filters)
		if err != nil {
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", export.AdsContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.AdsFilename(time.Now())))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(workbook); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("ads: erro ao enviar planilha")
		}
	}
}

func writeCatalogError(w http.ResponseWriter, err error) {
	var validationErr *cataloging.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dados do anúncio inválidos", validationErr.Messages)
		return
	}

	switch {
	case errors.Is(err, cataloging.ErrEmptyOwner):
		apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "Usuário não autenticado", nil)
	case errors.Is(err, cataloging.ErrExportAds):
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha de anúncios", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar anúncios", nil)
	}
}

func parseAdFilters(r *http.Request) (domain.AdFilters, error) {
	query := r.URL.Query()

	filters := domain.AdFilters{
		Platform: strings.TrimSpace(query.Get("platform")),
		Country:  strings.TrimSpace(query.Get("country")),
		Category: strings.TrimSpace(query.Get("category")),
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"min_engagement", &filters.MinEngagement},
		{"since_days", &filters.SinceDays},
		{"limit", &filters.Limit},
		{"offset", &filters.Offset},
	}

	for _, param := range ints {
		value, err := utils.QueryInt(query, param.key)
		if err != nil {
			return domain.AdFilters{}, err
		}
		*param.dst = value
	}

	return filters, nil
}
