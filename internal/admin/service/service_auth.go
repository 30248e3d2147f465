// Copyright 2026 CareConnect Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/careconnect-hq/careconnect/internal/admin/consts"
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/http/jwt"
	"github.com/careconnect-hq/careconnect/pkg/id"
	"github.com/careconnect-hq/careconnect/pkg/log"
	"github.com/careconnect-hq/careconnect/pkg/safe"
)

type AuthService struct {
	ctx      *ctx.Context
	userRepo repo.IUserRepository
}

func NewAuthService(appCtx *ctx.Context, userRepo repo.IUserRepository) *AuthService {
	return &AuthService{
		ctx:      appCtx,
		userRepo: userRepo,
	}
}

// Register creates a new account in pending status. The configured master
// admin email registers straight into the admin role and approved status.
func (as *AuthService) Register(register *model.Register, auth http.Auth) error {
	if register.Email == "" || register.Password == "" {
		return errors.New(http.UsernameArePasswordIsRequired.Msg)
	}

	register.UserId = id.GetUUIDWithoutDashes()
	if register.DisplayName == "" {
		register.DisplayName = register.FirstName
	}

	password, err := hashPassword(register.Password)
	if err != nil {
		return err
	}
	register.Password = string(password)

	if err := as.userRepo.Register(register); err != nil {
		return err
	}

	// the master admin account never waits in the approval queue
	if u, err := as.userRepo.GetUserByEmail(register.Email); err == nil && u.IsMasterAdmin(auth.MasterEmail) {
		if err := as.userRepo.UpdateUser(u.UserId, &model.User{Role: model.RoleAdmin}); err != nil {
			log.Errorw("failed to grant master admin role", "userId", u.UserId, "error", err)
		}
		if err := as.userRepo.UpdateStatus(u.UserId, model.UserStatusApproved, u.UserId); err != nil {
			log.Errorw("failed to activate master admin", "userId", u.UserId, "error", err)
		}
	}

	return nil
}

// Login verifies credentials and issues the token pair. Pending and
// disabled accounts authenticate but receive no token.
func (as *AuthService) Login(login *model.Login, auth http.Auth) (*model.LoginResp, error) {
	userInfo, err := as.userRepo.Login(login)
	if err != nil {
		log.Errorw("login failed", "email", login.Email, "error", err)
		return nil, errors.New(http.UserNotExist.Msg)
	}

	if !comparePassword(userInfo.Password, login.Password) {
		return nil, errors.New(http.UserIncorrectPassword.Msg)
	}

	if userInfo.Status != model.UserStatusApproved {
		return nil, errors.New(http.AccountNotActive.Msg)
	}

	role := userInfo.Role
	if userInfo.IsMasterAdmin(auth.MasterEmail) {
		role = model.RoleAdmin
	}

	aToken, rToken, err := jwt.GenToken(userInfo.UserId, role, []byte(auth.SecretKey), auth.AccessExpire, auth.RefreshExpire)
	if err != nil {
		log.Errorw("failed to generate tokens", "userId", userInfo.UserId, "error", err)
		return nil, err
	}

	now := time.Now()
	createAt := now.Unix()
	expireAt := now.Add(auth.AccessExpire * time.Minute).Unix()

	resp := &model.LoginResp{
		UserInfo: model.UserInfo{
			UserId:      userInfo.UserId,
			Email:       userInfo.Email,
			DisplayName: userInfo.DisplayName,
			FirstName:   userInfo.FirstName,
			LastName:    userInfo.LastName,
			Avatar:      userInfo.Avatar,
			Role:        role,
			Status:      userInfo.Status,
		},
		Token: map[string]string{
			"accessToken":  aToken,
			"refreshToken": rToken,
			"expireAt":     fmt.Sprintf("%d", expireAt),
			"createAt":     fmt.Sprintf("%d", createAt),
		},
		ExpireAt: expireAt,
		CreateAt: createAt,
	}

	safe.Go(func() {
		if err := as.userRepo.SetLoginRespInfo(auth.AccessExpire, resp); err != nil {
			log.Errorw("failed to set login response info", "userId", userInfo.UserId, "error", err)
		}
	})

	return resp, nil
}

func (as *AuthService) Refresh(userId, rToken string, auth *http.Auth) (map[string]string, error) {
	u, err := as.userRepo.GetUserById(userId)
	if err != nil {
		return nil, errors.New(http.UserNotExist.Msg)
	}
	if u.Status != model.UserStatusApproved {
		return nil, errors.New(http.AccountNotActive.Msg)
	}

	token, err := jwt.RefreshToken(auth.SecretKey, auth.AccessExpire, auth.RefreshExpire, userId, u.Role, rToken)
	if err != nil {
		log.Errorw("failed to refresh token", "userId", userId, "error", err)
		return nil, err
	}

	expireAt := time.Now().Add(auth.AccessExpire * time.Minute).Unix()
	token["expireAt"] = fmt.Sprintf("%d", expireAt)

	return token, nil
}

func (as *AuthService) Logout(userId string) error {
	tokenKey := consts.UserTokenKey + userId
	if err := as.userRepo.DelToken(tokenKey); err != nil {
		log.Errorw("failed to delete token", "userId", userId, "error", err)
		return errors.New(http.TokenBeEmpty.Msg)
	}

	userInfoKey := consts.UserInfoKey + userId
	if err := as.userRepo.DelToken(userInfoKey); err != nil {
		// user info deletion failure does not affect logout
		log.Warnw("failed to delete user info", "userId", userId, "error", err)
	}

	return nil
}

// ResetPassword handles the forgot-password flow, no old password required.
func (as *AuthService) ResetPassword(userId string, newPassword string) error {
	if len(newPassword) < 6 {
		return errors.New("new password must be at least 6 characters")
	}

	newPasswordHash, err := hashPassword(newPassword)
	if err != nil {
		log.Errorw("failed to hash new password", "userId", userId, "error", err)
		return errors.New("failed to process new password")
	}

	if err := as.userRepo.ResetPassword(userId, string(newPasswordHash)); err != nil {
		log.Errorw("failed to reset password", "userId", userId, "error", err)
		return errors.New("failed to reset password")
	}

	// invalidate the session
	tokenKey := consts.UserTokenKey + userId
	if err := as.userRepo.DelToken(tokenKey); err != nil {
		log.Warnw("failed to delete token after password reset", "userId", userId, "error", err)
	}

	log.Infow("user password reset", "userId", userId)
	return nil
}

func hashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
}

func comparePassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
