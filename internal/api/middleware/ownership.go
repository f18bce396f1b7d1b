package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/adboard-api/internal/api"
	"github.com/phrazzld/adboard-api/internal/api/shared"
	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/platform/logger"
	"github.com/phrazzld/adboard-api/internal/store"
)

// Forbidden messages per resource kind.
const (
	NotOwnerUserMessage          = "You can only make changes to your own profile"
	NotOwnerAdvertisementMessage = "You can only make changes to your own advertisements"
)

var notOwnerMessages = map[domain.ResourceKind]string{
	domain.KindUser:          NotOwnerUserMessage,
	domain.KindAdvertisement: NotOwnerAdvertisementMessage,
}

// NotOwnerMessage returns the 403 message for kind.
func NotOwnerMessage(kind domain.ResourceKind) string {
	if msg, ok := notOwnerMessages[kind]; ok {
		return msg
	}
	return "You can only make changes to your own resources"
}

// OwnerResolver loads the resource addressed by id as something with an owner.
type OwnerResolver func(ctx context.Context, id int64) (domain.Ownable, error)

// UserOwnership resolves user resources. A user is owned by itself, so no lookup is needed.
func UserOwnership() OwnerResolver {
	return func(_ context.Context, id int64) (domain.Ownable, error) {
		return domain.UserRef(id), nil
	}
}

// AdvertisementOwnership resolves advertisements through the store.
func AdvertisementOwnership(ads store.AdvertisementStore) OwnerResolver {
	return func(ctx context.Context, id int64) (domain.Ownable, error) {
		ad, err := ads.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return ad, nil
	}
}

// RequireOwner only lets the owner of the kind resource in the {id} path
// parameter through. Anonymous callers get 401, missing resources 404 and
// other users 403.
func RequireOwner(kind domain.ResourceKind, resolve OwnerResolver) func(http.Handler) http.Handler {
	message := NotOwnerMessage(kind)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := shared.Principal(r.Context())
			if !ok {
				api.HandleAPIError(w, r, ErrMissingCredentials, "Authorization credentials were not provided")
				return
			}

			id, err := shared.PathID(r)
			if err != nil {
				api.HandleAPIError(w, r, err, "")
				return
			}

			resource, err := resolve(r.Context(), id)
			if err != nil {
				api.HandleAPIError(w, r, err, "")
				return
			}

			if resource.OwnerID() != principal.ID {
				logger.FromContextOrDefault(r.Context(), slog.Default()).Info("ownership check failed",
					slog.String("resource_kind", string(kind)),
					slog.Int64("resource_id", id),
					slog.Int64("user_id", principal.ID))
				api.HandleAPIError(w, r, ErrNotOwner, message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
