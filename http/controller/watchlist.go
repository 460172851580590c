package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-watchlist-service/entity"
	"github.com/tnqbao/gau-watchlist-service/http/controller/dto"
	"github.com/tnqbao/gau-watchlist-service/repository"
	"github.com/tnqbao/gau-watchlist-service/utils"
)

func (ctrl *Controller) ListWatchList(c *gin.Context) {
	ctx := c.Request.Context()

	movies, err := ctrl.Repository.WatchListRepo.List(ctx)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[WatchList] Failed to list movies: %v", err)
		utils.JSON500(c, msgInternalError)
		return
	}

	utils.JSON200(c, dto.NewWatchListListResponse(movies))
}

func (ctrl *Controller) CreateWatchList(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.WatchListRequestDTO
	if errs := dto.Bind(c, &req); len(errs) > 0 {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[WatchList] Rejected payload: %v", errs)
		utils.JSONValidation(c, errs)
		return
	}

	if !ctrl.platformExists(c, req.Platform) {
		return
	}

	movie := req.ToEntity()
	if err := ctrl.Repository.WatchListRepo.Create(ctx, movie); err != nil {
		if errs := movieConstraintErrors(err, movie); errs != nil {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[WatchList] Platform vanished while creating '%s': %v", req.Name, err)
			utils.JSONValidation(c, errs)
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[WatchList] Failed to create movie '%s': %v", req.Name, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[WatchList] Created movie %d '%s'", movie.ID, movie.Name)
	utils.JSON201(c, dto.NewWatchListResponse(movie))
}

func (ctrl *Controller) GetWatchListByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		utils.JSON404(c, msgMovieNotFound)
		return
	}

	movie, err := ctrl.Repository.WatchListRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSON404(c, msgMovieNotFound)
		return
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[WatchList] Failed to load movie %d: %v", id, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	utils.JSON200(c, dto.NewWatchListResponse(movie))
}

func (ctrl *Controller) UpdateWatchListByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		utils.JSON404(c, msgMovieNotFound)
		return
	}

	movie, err := ctrl.Repository.WatchListRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSON404(c, msgMovieNotFound)
		return
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[WatchList] Failed to load movie %d: %v", id, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	var req dto.WatchListRequestDTO
	if errs := dto.Bind(c, &req); len(errs) > 0 {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[WatchList] Rejected update of movie %d: %v", id, errs)
		utils.JSONValidation(c, errs)
		return
	}

	if !ctrl.platformExists(c, req.Platform) {
		return
	}

	req.ApplyTo(movie)
	err = ctrl.Repository.WatchListRepo.Update(ctx, movie)
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSON404(c, msgMovieNotFound)
		return
	}
	if errs := movieConstraintErrors(err, movie); errs != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[WatchList] Platform vanished while updating movie %d: %v", id, err)
		utils.JSONValidation(c, errs)
		return
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[WatchList] Failed to update movie %d: %v", id, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[WatchList] Updated movie %d", id)
	utils.JSON200(c, dto.NewWatchListResponse(movie))
}

func (ctrl *Controller) DeleteWatchListByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		utils.JSON404(c, msgMovieNotFound)
		return
	}

	err := ctrl.Repository.WatchListRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSON404(c, msgMovieNotFound)
		return
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[WatchList] Failed to delete movie %d: %v", id, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[WatchList] Deleted movie %d", id)
	utils.JSON204(c)
}

// platformExists writes the response itself when it returns false.
func (ctrl *Controller) platformExists(c *gin.Context, platformID *uint) bool {
	if platformID == nil {
		return true
	}
	if !storableID(*platformID) {
		utils.JSONValidation(c, dto.InvalidPKError("platform", *platformID))
		return false
	}
	ctx := c.Request.Context()

	exists, err := ctrl.Repository.StreamPlatformRepo.ExistsByID(ctx, *platformID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[WatchList] Failed to check platform %d: %v", *platformID, err)
		utils.JSON500(c, msgInternalError)
		return false
	}
	if !exists {
		utils.JSONValidation(c, dto.InvalidPKError("platform", *platformID))
		return false
	}
	return true
}

// movieConstraintErrors maps a foreign key failure from a concurrent platform
// delete to the same error the existence check reports.
func movieConstraintErrors(err error, movie *entity.WatchList) dto.ValidationErrors {
	if errors.Is(err, repository.ErrForeignKeyViolated) && movie.PlatformID != nil {
		return dto.InvalidPKError("platform", *movie.PlatformID)
	}
	return nil
}
