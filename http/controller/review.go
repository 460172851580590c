package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-watchlist-service/entity"
	"github.com/tnqbao/gau-watchlist-service/http/controller/dto"
	"github.com/tnqbao/gau-watchlist-service/repository"
	"github.com/tnqbao/gau-watchlist-service/utils"
)

func (ctrl *Controller) ListReviews(c *gin.Context) {
	ctx := c.Request.Context()

	reviews, err := ctrl.Repository.ReviewRepo.List(ctx)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Review] Failed to list reviews: %v", err)
		utils.JSON500(c, msgInternalError)
		return
	}

	utils.JSON200(c, dto.NewReviewListResponse(reviews))
}

func (ctrl *Controller) CreateReview(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ReviewRequestDTO
	if errs := dto.Bind(c, &req); len(errs) > 0 {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Review] Rejected payload: %v", errs)
		utils.JSONValidation(c, errs)
		return
	}

	review := req.ToEntity()
	if !ctrl.reviewReferencesValid(c, review) {
		return
	}

	if err := ctrl.Repository.ReviewRepo.Create(ctx, review); err != nil {
		if errs := reviewConstraintErrors(err, review); errs != nil {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Review] Constraint rejected review for movie %d: %v", review.WatchListID, err)
			utils.JSONValidation(c, errs)
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Review] Failed to create review for movie %d: %v", review.WatchListID, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Review] Created review %d for movie %d", review.ID, review.WatchListID)
	utils.JSON201(c, dto.NewReviewResponse(review))
}

func (ctrl *Controller) GetReviewByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		utils.JSON404(c, msgReviewNotFound)
		return
	}

	review, err := ctrl.Repository.ReviewRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSON404(c, msgReviewNotFound)
		return
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Review] Failed to load review %d: %v", id, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	utils.JSON200(c, dto.NewReviewResponse(review))
}

func (ctrl *Controller) UpdateReviewByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		utils.JSON404(c, msgReviewNotFound)
		return
	}

	review, err := ctrl.Repository.ReviewRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSON404(c, msgReviewNotFound)
		return
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Review] Failed to load review %d: %v", id, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	var req dto.ReviewRequestDTO
	if errs := dto.Bind(c, &req); len(errs) > 0 {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Review] Rejected update of review %d: %v", id, errs)
		utils.JSONValidation(c, errs)
		return
	}

	req.ApplyTo(review)
	if !ctrl.reviewReferencesValid(c, review) {
		return
	}

	err = ctrl.Repository.ReviewRepo.Update(ctx, review)
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSON404(c, msgReviewNotFound)
		return
	}
	if errs := reviewConstraintErrors(err, review); errs != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Review] Constraint rejected update of review %d: %v", id, err)
		utils.JSONValidation(c, errs)
		return
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Review] Failed to update review %d: %v", id, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Review] Updated review %d", id)
	utils.JSON200(c, dto.NewReviewResponse(review))
}

func (ctrl *Controller) DeleteReviewByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		utils.JSON404(c, msgReviewNotFound)
		return
	}

	err := ctrl.Repository.ReviewRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSON404(c, msgReviewNotFound)
		return
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Review] Failed to delete review %d: %v", id, err)
		utils.JSON500(c, msgInternalError)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Review] Deleted review %d", id)
	utils.JSON204(c)
}

// reviewReferencesValid checks the target movie and author uniqueness. An
// unsaved review has ID 0, which excludes nothing. It writes the response
// itself when it returns false.
func (ctrl *Controller) reviewReferencesValid(c *gin.Context, review *entity.Review) bool {
	ctx := c.Request.Context()

	if !storableID(review.WatchListID) {
		utils.JSONValidation(c, dto.InvalidPKError("watchlist", review.WatchListID))
		return false
	}

	exists, err := ctrl.Repository.WatchListRepo.ExistsByID(ctx, review.WatchListID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Review] Failed to check movie %d: %v", review.WatchListID, err)
		utils.JSON500(c, msgInternalError)
		return false
	}
	if !exists {
		utils.JSONValidation(c, dto.InvalidPKError("watchlist", review.WatchListID))
		return false
	}

	taken, err := ctrl.Repository.ReviewRepo.ExistsByAuthor(ctx, review.AuthorID, review.ID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Review] Failed to check author %s: %v", review.AuthorID, err)
		utils.JSON500(c, msgInternalError)
		return false
	}
	if taken {
		utils.JSONValidation(c, dto.ValidationErrors{"author": {dto.DuplicateAuthorMessage}})
		return false
	}
	return true
}

// reviewConstraintErrors covers writes that raced past reviewReferencesValid.
func reviewConstraintErrors(err error, review *entity.Review) dto.ValidationErrors {
	switch {
	case errors.Is(err, repository.ErrDuplicateKey):
		return dto.ValidationErrors{"author": {dto.DuplicateAuthorMessage}}
	case errors.Is(err, repository.ErrForeignKeyViolated):
		return dto.InvalidPKError("watchlist", review.WatchListID)
	}
	return nil
}
