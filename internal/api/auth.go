package api

import (
	"context"
	"io"

	"storefront/internal/domain/model"
)

type RegisterInput struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	MobilePhone     string `json:"mobile_phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginResponse struct {
	User   model.User      `json:"user"`
	Tokens model.TokenPair `json:"tokens"`
}

func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	return c.post(ctx, "/auth/register/", in, nil)
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResponse
	if err := c.post(ctx, "/auth/login/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	return c.post(ctx, "/auth/verify-email/"+token+"/", nil, nil)
}

func (c *Client) PasswordResetRequest(ctx context.Context, email string) error {
	return c.post(ctx, "/auth/password-reset-request/", map[string]string{"email": email}, nil)
}

func (c *Client) PasswordResetConfirm(ctx context.Context, token, newPassword, confirmPassword string) error {
	body := map[string]string{
		"token":            token,
		"new_password":     newPassword,
		"confirm_password": confirmPassword,
	}
	return c.post(ctx, "/auth/password-reset-confirm/", body, nil)
}

// UserInfoは保存済みトークンで本人情報を引く。セッション初期化で使う。
func (c *Client) UserInfo(ctx context.Context) (*model.User, error) {
	var out model.User
	if err := c.get(ctx, "/auth/user-info/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type ProfileUpdate struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	MobilePhone string `json:"mobile_phone,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, in ProfileUpdate) (*model.User, error) {
	var out model.User
	if err := c.put(ctx, "/auth/profile/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfileWithImageは画像を含む更新。multipartで送る。
func (c *Client) UpdateProfileWithImage(ctx context.Context, fields map[string]string, imageName string, image io.Reader) (*model.User, error) {
	var out model.User
	if err := c.doMultipart(ctx, "PUT", "/auth/profile/", fields, "profile_picture", imageName, image, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmPassword string) error {
	body := map[string]string{
		"old_password":     oldPassword,
		"new_password":     newPassword,
		"confirm_password": confirmPassword,
	}
	return c.post(ctx, "/auth/change-password/", body, nil)
}
