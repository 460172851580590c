package controller

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-watchlist-service/http/controller/dto"
	"github.com/tnqbao/gau-watchlist-service/repository"
)

const (
	msgMovieNotFound    = "Movie not found."
	msgPlatformNotFound = "Platform not found."
	msgReviewNotFound   = "Review not found."
	msgInternalError    = "Internal server error"
)

// parseID reads the :id path parameter. Ids are positive integers within the
// bigint key range, anything else cannot match a record.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// storableID reports whether a client supplied key can exist in the store.
func storableID(id uint) bool {
	return uint64(id) <= repository.MaxID
}

func (ctrl *Controller) platformMode() dto.RelationMode {
	return dto.ParseRelationMode(ctrl.Config.EnvConfig.Serializer.PlatformWatchList)
}

// platformWithReviews is false in hyperlink mode, where entries are only linked.
func (ctrl *Controller) platformWithReviews() bool {
	return ctrl.platformMode() == dto.RelationNested
}

// watchListLinker builds absolute detail URLs from the host the client used.
func (ctrl *Controller) watchListLinker(c *gin.Context) dto.Linker {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	base := fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, ctrl.Config.EnvConfig.Server.RoutePrefix)

	return func(id uint) string {
		return fmt.Sprintf("%s/%d/", base, id)
	}
}
