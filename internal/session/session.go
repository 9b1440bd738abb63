// Package sessionは現在のセッションの認証状態を持つコントローラ。
// セッションごとに1インスタンス。ゲストのときはuserが空のまま。
package session

import (
	"context"
	"io"
	"log/slog"

	"storefront/internal/api"
	"storefront/internal/domain/model"
	"storefront/internal/notify"
)

// Resultは変更系操作の結果。エラーはthrowせずここに載せて返す。
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func ok() Result { return Result{Success: true} }

func fail(msg string) Result { return Result{Success: false, Error: msg} }

type Session struct {
	api      *api.Client
	notifier notify.Notifier

	user        *model.User
	initialized bool
}

func New(client *api.Client, notifier notify.Notifier) *Session {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Session{api: client, notifier: notifier}
}

// Initializeは保存済みトークンからセッションを復元する。
// 失敗したらトークンを消してゲスト扱い。必ずinitialized=trueで抜ける。
func (s *Session) Initialize(ctx context.Context) {
	defer func() { s.initialized = true }()

	if s.api.Tokens().Access(ctx) == "" {
		return
	}

	user, err := s.api.UserInfo(ctx)
	if err != nil {
		slog.Debug("session init failed", slog.String("error", err.Error()))
		s.api.Tokens().Clear(ctx)
		return
	}
	s.user = user
}

func (s *Session) Initialized() bool { return s.initialized }

func (s *Session) Login(ctx context.Context, email, password string) Result {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		msg := api.Message(err, "Login failed")
		s.notifier.Error(msg)
		return fail(msg)
	}

	if err := s.api.Tokens().SetPair(ctx, resp.Tokens); err != nil {
		msg := "Login failed"
		s.notifier.Error(msg)
		return fail(msg)
	}

	u := resp.User
	s.user = &u

	s.notifier.Success("Login successful!")
	return ok()
}

func (s *Session) Register(ctx context.Context, in api.RegisterInput) Result {
	if err := s.api.Register(ctx, in); err != nil {
		msg := api.Message(err, "Registration failed")
		s.notifier.Error(msg)
		return fail(msg)
	}

	s.notifier.Success("Registration successful! Please check your email for verification.")
	return ok()
}

// Logoutは同期で必ず成功する。
func (s *Session) Logout(ctx context.Context) {
	s.api.Tokens().Clear(ctx)
	s.user = nil
	s.notifier.Success("Logged out successfully!")
}

// ForceLogoutはrefresh不能が確定したときにクライアントから呼ばれる。
// トークンは既に消えているのでidentityだけ落とす。
func (s *Session) ForceLogout() {
	s.user = nil
}

func (s *Session) UpdateProfile(ctx context.Context, in api.ProfileUpdate) Result {
	user, err := s.api.UpdateProfile(ctx, in)
	if err != nil {
		msg := api.Message(err, "Profile update failed")
		s.notifier.Error(msg)
		return fail(msg)
	}

	s.user = user
	s.notifier.Success("Profile updated successfully!")
	return ok()
}

func (s *Session) UpdateProfileWithImage(ctx context.Context, fields map[string]string, imageName string, image io.Reader) Result {
	user, err := s.api.UpdateProfileWithImage(ctx, fields, imageName, image)
	if err != nil {
		msg := api.Message(err, "Profile update failed")
		s.notifier.Error(msg)
		return fail(msg)
	}

	s.user = user
	s.notifier.Success("Profile updated successfully!")
	return ok()
}

func (s *Session) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmPassword string) Result {
	if err := s.api.ChangePassword(ctx, oldPassword, newPassword, confirmPassword); err != nil {
		msg := api.Message(err, "Password change failed")
		s.notifier.Error(msg)
		return fail(msg)
	}

	s.notifier.Success("Password changed successfully!")
	return ok()
}

func (s *Session) PasswordResetRequest(ctx context.Context, email string) Result {
	if err := s.api.PasswordResetRequest(ctx, email); err != nil {
		msg := api.Message(err, "Password reset request failed")
		s.notifier.Error(msg)
		return fail(msg)
	}

	s.notifier.Success("Password reset link sent to your email!")
	return ok()
}

func (s *Session) PasswordResetConfirm(ctx context.Context, token, newPassword, confirmPassword string) Result {
	if err := s.api.PasswordResetConfirm(ctx, token, newPassword, confirmPassword); err != nil {
		msg := api.Message(err, "Password reset failed")
		s.notifier.Error(msg)
		return fail(msg)
	}

	s.notifier.Success("Password reset successfully!")
	return ok()
}

func (s *Session) VerifyEmail(ctx context.Context, token string) Result {
	if err := s.api.VerifyEmail(ctx, token); err != nil {
		msg := api.Message(err, "Email verification failed")
		s.notifier.Error(msg)
		return fail(msg)
	}

	s.notifier.Success("Email verified successfully!")
	return ok()
}

func (s *Session) User() *model.User { return s.user }

func (s *Session) IsAuthenticated() bool { return s.user != nil }

func (s *Session) IsSeller() bool {
	return s.user != nil && s.user.IsSeller
}

func (s *Session) IsAdmin() bool {
	return s.user != nil && s.user.IsStaff
}
