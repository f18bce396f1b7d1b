package api

import (
	"fmt"
	"strconv"

	"github.com/phrazzld/adboard-api/internal/domain"
)

func parseOwnerID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: owner_id %q", domain.ErrInvalidID, raw)
	}
	return id, nil
}
