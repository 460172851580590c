package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-watchlist-service/http/controller/dto"
	"github.com/tnqbao/gau-watchlist-service/repository"
	"github.com/tnqbao/gau-watchlist-service/utils"
)

func (ctrl *Controller) ListStreamPlatforms(c *gin.Context) {
	ctx := c.Request.Context()

	platforms, err := ctrl.Repository.StreamPlatformRepo.List(ctx, ctrl.platformWithReviews())
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Platform] Failed to list platforms: %v", err)
		utils.JSON500(c, msgInternalError)
		return
	}

	utils.JSON200(c, dto.NewStreamPlatformListResponse(platforms, ctrl.platformMode(), ctrl.watchListLinker(c)))
}

func (ctrl *Controller) CreateStreamPlatform(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.StreamPlatformRequestDTO
	if errs := dto.Bind(c, &req); len(errs) > 0 {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Platform] Rejected payload: %v", errs)
		utils.JSONValidation(c, errs)
		return
	}

	platform := req.ToEntity()
	if err := ctrl.Repository.StreamPlatformRepo.Create(ctx, platform); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Platform] Failed to create platform '%s': %v", req.Name, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Platform] Created platform %d '%s'", platform.ID, platform.Name)
	utils.JSON201(c, dto.NewStreamPlatformResponse(platform, ctrl.platformMode(), ctrl.watchListLinker(c)))
}

func (ctrl *Controller) GetStreamPlatformByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		utils.JSON404(c, msgPlatformNotFound)
		return
	}

	platform, err := ctrl.Repository.StreamPlatformRepo.GetByID(ctx, id, ctrl.platformWithReviews())
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSON404(c, msgPlatformNotFound)
		return
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Platform] Failed to load platform %d: %v", id, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	utils.JSON200(c, dto.NewStreamPlatformResponse(platform, ctrl.platformMode(), ctrl.watchListLinker(c)))
}

func (ctrl *Controller) UpdateStreamPlatformByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		utils.JSON404(c, msgPlatformNotFound)
		return
	}

	platform, err := ctrl.Repository.StreamPlatformRepo.GetByID(ctx, id, ctrl.platformWithReviews())
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSON404(c, msgPlatformNotFound)
		return
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Platform] Failed to load platform %d: %v", id, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	var req dto.StreamPlatformRequestDTO
	if errs := dto.Bind(c, &req); len(errs) > 0 {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Platform] Rejected update of platform %d: %v", id, errs)
		utils.JSONValidation(c, errs)
		return
	}

	req.ApplyTo(platform)
	err = ctrl.Repository.StreamPlatformRepo.Update(ctx, platform)
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSON404(c, msgPlatformNotFound)
		return
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Platform] Failed to update platform %d: %v", id, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Platform] Updated platform %d", id)
	utils.JSON200(c, dto.NewStreamPlatformResponse(platform, ctrl.platformMode(), ctrl.watchListLinker(c)))
}

// DeleteStreamPlatformByID also removes the platform's movies through the
// cascading foreign key.
func (ctrl *Controller) DeleteStreamPlatformByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		utils.JSON404(c, msgPlatformNotFound)
		return
	}

	err := ctrl.Repository.StreamPlatformRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSON404(c, msgPlatformNotFound)
		return
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Platform] Failed to delete platform %d: %v", id, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Platform] Deleted platform %d", id)
	utils.JSON204(c)
}
