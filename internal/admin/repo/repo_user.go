package repo

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"

	"github.com/careconnect-hq/careconnect/internal/admin/consts"
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/log"
)

type IUserRepository interface {
	Register(register *model.Register) error
	Login(login *model.Login) (*model.User, error)
	GetUserById(userId string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	FetchUserInfo(userId string) (*model.UserInfo, error)
	UpdateUser(userId string, u *model.User) error
	UpdateStatus(userId, status, approvedBy string) error
	ListUsers(status string, offset, pageSize int) ([]model.User, int64, error)
	ListApproved() ([]model.User, error)
	SetOrigin(userId, newHireId, newHireName string) error
	SetLastQuestionAt(userId string, at time.Time) error
	ResetPassword(userId, newPasswordHash string) error
	UpdateAvatar(userId, avatarUrl string) error
	SetLoginRespInfo(accessExpire time.Duration, loginResp *model.LoginResp) error
	DelToken(key string) error
	InvalidateUserInfo(userId string)
}

type UserRepo struct {
	Ctx       *ctx.Context
	userModel model.User
}

func NewUserRepo(appCtx *ctx.Context) IUserRepository {
	return &UserRepo{
		Ctx:       appCtx,
		userModel: model.User{},
	}
}

func (ur *UserRepo) Register(register *model.Register) error {
	var u model.User
	err := ur.Ctx.GetDB().Table(ur.userModel.TableName()).Select("email").
		Where("email = ?", register.Email).
		First(&u).Error
	if err == nil {
		return errors.New("email already registered")
	}
	return ur.Ctx.GetDB().Table(ur.userModel.TableName()).Create(register).Error
}

func (ur *UserRepo) Login(login *model.Login) (*model.User, error) {
	var u = &model.User{}
	err := ur.Ctx.GetDB().Table(ur.userModel.TableName()).
		Where("email = ?", login.Email).
		First(u).Error
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (ur *UserRepo) GetUserById(userId string) (*model.User, error) {
	var u = &model.User{}
	err := ur.Ctx.GetDB().Table(ur.userModel.TableName()).
		Where("user_id = ?", userId).
		First(u).Error
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (ur *UserRepo) GetUserByEmail(email string) (*model.User, error) {
	var u = &model.User{}
	err := ur.Ctx.GetDB().Table(ur.userModel.TableName()).
		Where("email = ?", email).
		First(u).Error
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (ur *UserRepo) FetchUserInfo(userId string) (*model.UserInfo, error) {
	key := consts.UserInfoKey + userId
	u := &model.UserInfo{UserId: userId}

	if rdb := ur.Ctx.GetRedis(); rdb != nil {
		userInfoStr, err := rdb.Get(ur.Ctx.GetCtx(), key).Result()
		if err == nil && userInfoStr != "" {
			if err := sonic.UnmarshalString(userInfoStr, u); err != nil {
				log.Errorw("failed to unmarshal cached user info", "userId", userId, "error", err)
			} else {
				return u, nil
			}
		}
	}

	err := ur.Ctx.GetDB().Table(ur.userModel.TableName()).
		Select("user_id, email, display_name, first_name, last_name, avatar, role, status").
		Where("user_id = ?", userId).First(u).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	if rdb := ur.Ctx.GetRedis(); rdb != nil {
		userInfoJson, err := sonic.MarshalString(u)
		if err != nil {
			log.Errorw("failed to marshal user info", "userId", userId, "error", err)
		} else {
			if err := rdb.Set(ur.Ctx.GetCtx(), key, userInfoJson, time.Hour).Err(); err != nil {
				log.Errorw("failed to cache user info", "userId", userId, "error", err)
			}
		}
	}

	return u, nil
}

// UpdateUser updates profile fields (user_id, email, password, created_at cannot be updated)
func (ur *UserRepo) UpdateUser(userId string, u *model.User) error {
	return ur.Ctx.GetDB().Table(ur.userModel.TableName()).
		Where("user_id = ?", userId).
		Omit("user_id", "email", "password", "created_at").
		Updates(u).Error
}

func (ur *UserRepo) UpdateStatus(userId, status, approvedBy string) error {
	updates := map[string]interface{}{
		"status": status,
	}
	if status == model.UserStatusApproved {
		updates["approved_by"] = approvedBy
		updates["approved_at"] = time.Now()
	}
	result := ur.Ctx.GetDB().Table(ur.userModel.TableName()).
		Where("user_id = ?", userId).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.Errorf("user %s not found", userId)
	}
	ur.InvalidateUserInfo(userId)
	return nil
}

func (ur *UserRepo) ListUsers(status string, offset, pageSize int) ([]model.User, int64, error) {
	var users []model.User

	countTx := ur.Ctx.GetDB().Table(ur.userModel.TableName())
	tx := ur.Ctx.GetDB().Table(ur.userModel.TableName())
	if status != "" {
		countTx = countTx.Where("status = ?", status)
		tx = tx.Where("status = ?", status)
	}

	count, err := Count(countTx)
	if err != nil {
		return nil, 0, err
	}

	err = tx.Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

func (ur *UserRepo) ListApproved() ([]model.User, error) {
	var users []model.User
	err := ur.Ctx.GetDB().Table(ur.userModel.TableName()).
		Where("status = ?", model.UserStatusApproved).
		Find(&users).Error
	return users, err
}

func (ur *UserRepo) SetOrigin(userId, newHireId, newHireName string) error {
	return ur.Ctx.GetDB().Table(ur.userModel.TableName()).
		Where("user_id = ?", userId).
		Updates(map[string]interface{}{
			"origin_new_hire_id":   newHireId,
			"origin_new_hire_name": newHireName,
		}).Error
}

func (ur *UserRepo) SetLastQuestionAt(userId string, at time.Time) error {
	return ur.Ctx.GetDB().Table(ur.userModel.TableName()).
		Where("user_id = ?", userId).
		Update("last_question_at", at).Error
}

func (ur *UserRepo) ResetPassword(userId, newPasswordHash string) error {
	return ur.Ctx.GetDB().Table(ur.userModel.TableName()).
		Where("user_id = ?", userId).
		Update("password", newPasswordHash).Error
}

func (ur *UserRepo) UpdateAvatar(userId, avatarUrl string) error {
	result := ur.Ctx.GetDB().Table(ur.userModel.TableName()).
		Where("user_id = ?", userId).
		Update("avatar", avatarUrl)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		log.Warnw("no rows updated for user avatar", "userId", userId)
	}
	ur.InvalidateUserInfo(userId)
	return nil
}

func (ur *UserRepo) SetLoginRespInfo(accessExpire time.Duration, loginResp *model.LoginResp) error {
	rdb := ur.Ctx.GetRedis()
	if rdb == nil {
		return fmt.Errorf("cache not available")
	}

	pipe := rdb.Pipeline()

	tokenInfo := model.TokenInfo{
		AccessToken:  loginResp.Token["accessToken"],
		RefreshToken: loginResp.Token["refreshToken"],
		ExpireAt:     loginResp.ExpireAt,
		CreateAt:     loginResp.CreateAt,
	}

	tokenInfoJson, err := sonic.Marshal(&tokenInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal token info: %w", err)
	}

	tokenKey := consts.UserTokenKey + loginResp.UserInfo.UserId
	if err := pipe.Set(ur.Ctx.GetCtx(), tokenKey, tokenInfoJson, accessExpire*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set token in Redis: %w", err)
	}

	userInfoJson, err := sonic.Marshal(&loginResp.UserInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal user info: %w", err)
	}

	userInfoKey := consts.UserInfoKey + loginResp.UserInfo.UserId
	if err := pipe.Set(ur.Ctx.GetCtx(), userInfoKey, userInfoJson, accessExpire*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set user info in Redis: %w", err)
	}

	if _, err := pipe.Exec(ur.Ctx.GetCtx()); err != nil {
		return fmt.Errorf("failed to execute Redis pipeline: %w", err)
	}
	return nil
}

func (ur *UserRepo) DelToken(key string) error {
	rdb := ur.Ctx.GetRedis()
	if rdb == nil {
		return nil
	}
	if err := rdb.Del(ur.Ctx.GetCtx(), key).Err(); err != nil {
		return fmt.Errorf("failed to delete token from Redis: %w", err)
	}
	return nil
}

func (ur *UserRepo) InvalidateUserInfo(userId string) {
	rdb := ur.Ctx.GetRedis()
	if rdb == nil {
		return
	}
	key := consts.UserInfoKey + userId
	if err := rdb.Del(ur.Ctx.GetCtx(), key).Err(); err != nil {
		log.Warnw("failed to clear user info cache", "userId", userId, "error", err)
	}
}
