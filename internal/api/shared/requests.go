package shared

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/store"
)

// IDParam is the chi URL parameter holding a resource id.
const IDParam = "id"

// PathID parses the positive integer id from the URL path. A number too
// large for an id names nothing and is reported as not found.
func PathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, IDParam)
	id, err := strconv.ParseInt(raw, 10, 64)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return 0, fmt.Errorf("%w: id %s out of range", store.ErrNotFound, raw)
	}
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}
	return id, nil
}

// BasicCredentials decodes "Authorization: Basic base64(username:password)".
// ok is false when the header is absent, uses another scheme, or is malformed.
func BasicCredentials(r *http.Request) (username, password string, ok bool) {
	scheme, encoded, found := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !found || scheme != "Basic" {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", "", false
	}

	username, password, found = strings.Cut(string(decoded), ":")
	if !found || username == "" || password == "" {
		return "", "", false
	}
	return username, password, true
}
