package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lguportal/cms-sdk/models"
)

// UserService 管理员账号：登录、一次性初始化、信息查询。
// 账号只在 /setup（或离线运维）时创建，本系统不提供修改入口。
type UserService struct {
	*Service
	userDao       *models.UserDAO
	tokenService  *TokenService
	loginTokenTTL time.Duration
}

func NewUserService(s *Service) *UserService {
	return &UserService{
		Service:       s,
		userDao:       models.NewUserDAO(s.DB),
		tokenService:  NewTokenService(s.RDB),
		loginTokenTTL: 7 * 24 * time.Hour,
	}
}

// --- types ---

type UserDTO struct {
	ID        uint64    `json:"id"`
	UID       string    `json:"uid"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResp struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type SetupReq struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name"`
}

func toUserDTO(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID,
		UID:       u.UID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Login 校验密码并签发 token。查不到用户和密码不对给同一个错误，
// 不让调用方探测用户名。
func (s *UserService) Login(ctx context.Context, req LoginReq) (*LoginResp, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	u, err := s.userDao.FindByUsername(username)
	if err != nil {
		if s.userDao.IsNotFound(err) {
			return nil, ErrLoginFailed
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrLoginFailed
	}

	token, err := s.tokenService.GenerateToken()
	if err != nil {
		return nil, err
	}
	if err := s.tokenService.StoreToken(ctx, token, u.ID, s.loginTokenTTL); err != nil {
		return nil, err
	}

	return &LoginResp{Token: token, User: *toUserDTO(u)}, nil
}

// GetUser 按 id 查管理员信息（脱敏后的 DTO）。
func (s *UserService) GetUser(id uint64) (*UserDTO, error) {
	u, err := s.userDao.FindByID(id)
	if err != nil {
		if s.userDao.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user id %d", ErrRecordNotFound, id)
		}
		return nil, err
	}
	return toUserDTO(u), nil
}

// SetupCompleted 是否已有任何用户行（/setup 的自禁用判定）。
func (s *UserService) SetupCompleted() (bool, error) {
	count, err := s.userDao.Count()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetupInitialAdmin 一次性初始化管理员。已有用户行后永久拒绝。
func (s *UserService) SetupInitialAdmin(ctx context.Context, req SetupReq) error {
	done, err := s.SetupCompleted()
	if err != nil {
		return err
	}
	if done {
		return ErrSetupCompleted
	}

	username := strings.TrimSpace(req.Username)
	name := strings.TrimSpace(req.Name)
	if username == "" || req.Password == "" || name == "" {
		return fmt.Errorf("%w: username, password and name are required", ErrValidation)
	}
	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := &models.User{
		UID:          uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
		Role:         "admin",
	}
	if err := s.userDao.Create(u); err != nil {
		return fmt.Errorf("%w: %v", ErrRecordUpdateFailed, err)
	}
	return nil
}
