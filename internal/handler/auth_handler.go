package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/api"
	"storefront/internal/domain/model"
)

// /sessionのHTTP。認証操作はすべて{success, error}形式で200を返す。
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler { return &AuthHandler{} }

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/session")
	g.GET("", h.current)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.POST("/register", h.register)
	g.PUT("/profile", h.updateProfile)
	g.POST("/change-password", h.changePassword)
	g.POST("/password-reset-request", h.passwordResetRequest)
	g.POST("/password-reset-confirm", h.passwordResetConfirm)
	g.POST("/verify-email/:token", h.verifyEmail)
}

type sessionResponse struct {
	Authenticated bool        `json:"authenticated"`
	User          *model.User `json:"user,omitempty"`
	IsSeller      bool        `json:"is_seller"`
	IsAdmin       bool        `json:"is_admin"`
}

func (h *AuthHandler) current(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: b.Session.IsAuthenticated(),
		User:          b.Session.User(),
		IsSeller:      b.Session.IsSeller(),
		IsAdmin:       b.Session.IsAdmin(),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) login(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	ctx := c.Request().Context()
	res := b.Session.Login(ctx, req.Email, req.Password)

	//認証モードが変わったのでカート/ウィッシュリストを取り直す。
	//ゲストの中身はマージしない（破棄される）。
	if res.Success {
		b.Cart.Fetch(ctx)
		b.Wishlist.Fetch(ctx)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) logout(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	b.Session.Logout(ctx)

	//ゲストモードに戻る。保存済みのゲストblobがあればそれを読む。
	b.Cart.Fetch(ctx)
	b.Wishlist.Fetch(ctx)

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) register(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req api.RegisterInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return c.JSON(http.StatusOK, b.Session.Register(c.Request().Context(), req))
}

func (h *AuthHandler) updateProfile(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	//画像付きはmultipartで来る
	if form, err := c.MultipartForm(); err == nil && form != nil {
		fields := map[string]string{}
		for k, v := range form.Value {
			if len(v) > 0 {
				fields[k] = v[0]
			}
		}

		files := form.File["profile_picture"]
		if len(files) > 0 {
			f, err := files[0].Open()
			if err != nil {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid image"})
			}
			defer f.Close()
			return c.JSON(http.StatusOK, b.Session.UpdateProfileWithImage(c.Request().Context(), fields, files[0].Filename, f))
		}
		return c.JSON(http.StatusOK, b.Session.UpdateProfileWithImage(c.Request().Context(), fields, "", nil))
	}

	var req api.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return c.JSON(http.StatusOK, b.Session.UpdateProfile(c.Request().Context(), req))
}

type changePasswordRequest struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *AuthHandler) changePassword(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return c.JSON(http.StatusOK, b.Session.ChangePassword(c.Request().Context(), req.OldPassword, req.NewPassword, req.ConfirmPassword))
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) passwordResetRequest(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req passwordResetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return c.JSON(http.StatusOK, b.Session.PasswordResetRequest(c.Request().Context(), req.Email))
}

type passwordResetConfirmRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *AuthHandler) passwordResetConfirm(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	var req passwordResetConfirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return c.JSON(http.StatusOK, b.Session.PasswordResetConfirm(c.Request().Context(), req.Token, req.NewPassword, req.ConfirmPassword))
}

func (h *AuthHandler) verifyEmail(c echo.Context) error {
	b, err := bundle(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, b.Session.VerifyEmail(c.Request().Context(), c.Param("token")))
}
