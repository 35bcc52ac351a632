package handler

import (
	"errors"

	"mitronet/internal/delivery/http/middleware"
	"mitronet/internal/pkg/response"
	ucpost "mitronet/internal/usecase/post"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type PostHandler struct {
	uc ucpost.PostUsecase
}

type createPostRequest struct {
	Content string `json:"content" form:"content"`
}

type commentRequest struct {
	Comment string `json:"comment" form:"comment"`
}

func NewPostHandler(uc ucpost.PostUsecase) *PostHandler {
	return &PostHandler{uc: uc}
}

func (h *PostHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/createpost", h.Create)
	r.Post("/postshow", h.Create)
	r.Post("/like/:postId", h.ToggleLike)
	r.Post("/comment/:postId", h.AddComment)
	r.Delete("/deletepost/:postId", h.Delete)
	r.Delete("/deletecomment/:postId/:commentId", h.DeleteComment)
}

func (h *PostHandler) Create(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	var req createPostRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	p, err := h.uc.Create(c.Context(), claims, req.Content)
	if err != nil {
		return mapPostUsecaseError(err)
	}

	return response.OK(c, fiber.Map{"message": "Post created successfully", "post": p})
}

func (h *PostHandler) ToggleLike(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	postID, err := parseID(c, "postId")
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Post not found", err)
	}

	res, err := h.uc.ToggleLike(c.Context(), claims.UserID, postID)
	if err != nil {
		return mapPostUsecaseError(err)
	}

	return response.OK(c, fiber.Map{"liked": res.Liked, "likesCount": res.LikesCount})
}

func (h *PostHandler) AddComment(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	postID, err := parseID(c, "postId")
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Post not found", err)
	}

	var req commentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	comment, err := h.uc.AddComment(c.Context(), claims, postID, req.Comment)
	if err != nil {
		return mapPostUsecaseError(err)
	}

	return response.OK(c, fiber.Map{"message": "Comment added successfully", "comment": comment})
}

func (h *PostHandler) Delete(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	postID, err := parseID(c, "postId")
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Post not found", err)
	}

	if err := h.uc.Delete(c.Context(), claims.UserID, postID); err != nil {
		return mapPostUsecaseError(err)
	}

	return response.OK(c, fiber.Map{"message": "Post deleted successfully"})
}

func (h *PostHandler) DeleteComment(c fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	postID, err := parseID(c, "postId")
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Post not found", err)
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Comment not found", err)
	}

	if err := h.uc.DeleteComment(c.Context(), claims.UserID, postID, commentID); err != nil {
		return mapPostUsecaseError(err)
	}

	return response.OK(c, fiber.Map{"message": "Comment deleted successfully"})
}

func parseID(c fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

func mapPostUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucpost.ErrEmptyContent):
		return middleware.NewAppError(fiber.StatusBadRequest, "Content is required", err)
	case errors.Is(err, ucpost.ErrEmptyComment):
		return middleware.NewAppError(fiber.StatusBadRequest, "Comment cannot be empty", err)
	case errors.Is(err, ucpost.ErrPostNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Post not found", err)
	case errors.Is(err, ucpost.ErrCommentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Comment not found", err)
	case errors.Is(err, ucpost.ErrNotPostAuthor):
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized to delete this post", err)
	case errors.Is(err, ucpost.ErrNotCommentOwner):
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized to delete this comment", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
