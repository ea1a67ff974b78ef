package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/internal/dto"
	"github.com/talmaprime/teaops/internal/service/authservice"
	pkgauth "github.com/talmaprime/teaops/pkg/auth"
	"github.com/talmaprime/teaops/pkg/utils"
	"github.com/talmaprime/teaops/pkg/validate"
)

type Service interface {
	CreateUser(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, actorRole domain.Role, targetID int) error
}

type UsersHandler struct {
	userService Service
}

func New(userService Service) *UsersHandler {
	return &UsersHandler{
		userService: userService,
	}
}

// Create godoc
//
//	@Summary		Create a new account
//	@Description	Add a user account with one of the known roles
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateUserRequestDTO	true	"Create user request body"
//	@Success		200		{object}	dto.CreateUserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not allowed"
//	@Failure		409		{object}	utils.Response	"Username already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users [post]
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsRole(req.Role) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid role")
		return
	}
	_, err := h.userService.CreateUser(r.Context(), strings.TrimSpace(req.Username), req.Password, domain.Role(req.Role))
	if err != nil {
		if errors.Is(err, authservice.ErrUsernameTaken) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateUserResponseDTO{
		Message: "User successfully created",
	})
}

// List godoc
//
//	@Summary		List accounts
//	@Description	Get all user accounts ordered by role and username
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users [get]
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.UserResponseDTO, len(users))
	for i, u := range users {
		response[i] = dto.UserResponseDTO{
			ID:       u.ID,
			Username: u.Username,
			Role:     string(u.Role),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Delete godoc
//
//	@Summary		Delete an account
//	@Description	Remove a user account. An md caller may only remove managers; deleting a missing account succeeds silently.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	utils.Response	"Deleted"
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [delete]
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	role := r.Context().Value(pkgauth.RoleKey).(domain.Role)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := h.userService.DeleteUser(r.Context(), role, id); err != nil {
		switch {
		case errors.Is(err, authservice.ErrDeleteForbidden):
			utils.RespondWithError(w, http.StatusForbidden, "Not allowed.")
		case errors.Is(err, authservice.ErrMDOnlyManagers):
			utils.RespondWithError(w, http.StatusForbidden, "MD can only delete managers.")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Deleted."})
}
