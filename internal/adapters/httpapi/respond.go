package httpapi

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// renderJSON relays a raw vendor response body with the given status.
func renderJSON(c *gin.Context, status int, raw []byte) {
	if len(raw) == 0 {
		c.Status(status)
		return
	}
	c.Data(status, "application/json", raw)
}

// renderError maps the error taxonomy onto HTTP responses:
// validation/parse -> 400 with the field-named message, not-found -> a
// clean 404, disabled feature -> 400 with the user-facing message, and
// vendor failures -> the vendor's status and body verbatim (500 when the
// vendor never produced a status).
func renderError(c *gin.Context, err error) {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
		return
	}

	var parse *domain.ParseError
	if errors.As(err, &parse) {
		c.JSON(http.StatusBadRequest, gin.H{"error": parse.Error()})
		return
	}

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}

	var disabled *domain.FeatureDisabledError
	if errors.As(err, &disabled) {
		c.JSON(http.StatusBadRequest, gin.H{"error": disabled.Message})
		return
	}

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		renderJSON(c, upstream.Status(), upstream.Body)
		return
	}

	logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// requireAccountID pulls the account_id query parameter that nearly
// every route needs. Missing id renders the 400 directly.
func requireAccountID(c *gin.Context) (string, bool) {
	accountID := c.Query("account_id")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account_id is required"})
		return "", false
	}
	return accountID, true
}
