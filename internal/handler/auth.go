package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"imovies/internal/config"
	"imovies/internal/model"
	"imovies/internal/repository"
	"imovies/internal/utils"
)

// AuthHandler serves registration and login for both account kinds.
// Users and admins live in separate tables with identical shape; the
// repo a request is routed to decides which role the issued token
// carries.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.AccountRepo
	Admins *repository.AccountRepo
}

func NewAuthHandler(cfg config.Config, users, admins *repository.AccountRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Admins: admins}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountPart struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
type authResp struct {
	Account accountPart `json:"account"`
	Token   string      `json:"token"`
	Expires string      `json:"expires"`
}

// RegisterUser handles POST /api/auth/register.
func (h *AuthHandler) RegisterUser(c echo.Context) error {
	return h.register(c, h.Users, model.RoleUser)
}

// RegisterAdmin handles POST /api/auth/admin/register.
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	return h.register(c, h.Admins, model.RoleAdmin)
}

// LoginUser handles POST /api/auth/login.
func (h *AuthHandler) LoginUser(c echo.Context) error {
	return h.login(c, h.Users, model.RoleUser)
}

// LoginAdmin handles POST /api/auth/admin/login.
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	return h.login(c, h.Admins, model.RoleAdmin)
}

// register creates the account and returns a token immediately so the
// client does not need a follow-up login call.
func (h *AuthHandler) register(c echo.Context, repo *repository.AccountRepo, role string) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = utils.NormalizeEmail(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/email/password required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := repo.Create(ctx, req.Username, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create account failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, req.Email, role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusCreated, authResp{
		Account: accountPart{ID: id, Username: req.Username, Email: req.Email, Role: role},
		Token:   access.Token,
		Expires: access.Exp.Format(time.RFC3339),
	})
}

func (h *AuthHandler) login(c echo.Context, repo *repository.AccountRepo, role string) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = utils.NormalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	acc, err := repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(acc.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, acc.Email, role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		Account: accountPart{ID: acc.ID, Username: acc.Username, Email: acc.Email, Role: role},
		Token:   access.Token,
		Expires: access.Exp.Format(time.RFC3339),
	})
}
