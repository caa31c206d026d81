package api

import (
	"errors"
	"log"
	"time"

	"expense-api/auth"
	"expense-api/config"
	"expense-api/middleware"
	"expense-api/models"
	"expense-api/repository"
	"expense-api/service"
	"expense-api/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultTokenTTL = 15 * time.Minute

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg          *config.Config
	users        *repository.UserRepository
	emailService *service.EmailService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config, db *gorm.DB) *AuthHandler {
	return &AuthHandler{
		cfg:          cfg,
		users:        repository.NewUserRepository(db),
		emailService: service.NewEmailService(&cfg.Email),
	}
}

func (h *AuthHandler) tokenTTL() time.Duration {
	if h.cfg.JWT.ExpireTime > 0 {
		return h.cfg.JWT.ExpireTime
	}
	return defaultTokenTTL
}

// Signup 用户注册
// @Summary 用户注册
// @Description 用户名和邮箱会被转为小写，均不可与已有用户重复
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body validation.UserCreateInput true "注册信息"
// @Success 201 {object} Response "User created successfully"
// @Failure 400 {object} Response "参数错误或用户已存在"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var in validation.UserCreateInput
	if err := bindJSON(c, &in); err != nil {
		ValidationError(c, err)
		return
	}
	req, err := in.Validate()
	if err != nil {
		ValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.users.FindByEmailOrUsername(ctx, req.Email, req.Username); err == nil {
		BadRequest(c, "User already exists")
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		InternalError(c, config.SafeErrorMessage(err, "Failed to create user"))
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		BadRequest(c, "Password must be at most 72 bytes")
		return
	} else if err != nil {
		InternalError(c, "Failed to create user")
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
	}
	if err := h.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			BadRequest(c, "User already exists")
			return
		}
		InternalError(c, config.SafeErrorMessage(err, "Failed to create user"))
		return
	}

	// 欢迎邮件发送失败不影响注册
	if h.emailService.Enabled() {
		if err := h.emailService.SendWelcomeEmail(user.Email, user.Username); err != nil {
			log.Printf("发送欢迎邮件失败 (%s): %v", user.Email, err)
		}
	}

	Created(c, "User created successfully")
}

// Login 用户登录
// @Summary 用户登录
// @Description 登录成功后通过 HttpOnly Cookie "token" 下发令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body validation.UserLoginInput true "登录信息"
// @Success 200 {object} Response "User logged in successfully"
// @Failure 400 {object} Response "参数错误或凭证无效"
// @Failure 429 {object} Response "登录过于频繁"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var in validation.UserLoginInput
	if err := bindJSON(c, &in); err != nil {
		ValidationError(c, err)
		return
	}
	req, err := in.Validate()
	if err != nil {
		ValidationError(c, err)
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			BadRequest(c, "Invalid credentials")
			return
		}
		InternalError(c, config.SafeErrorMessage(err, "Login failed"))
		return
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		BadRequest(c, "Invalid credentials")
		return
	}

	token, expiresAt, err := auth.GenerateToken(user.ID, h.tokenTTL())
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "Login failed"))
		return
	}
	setTokenCookie(c, token, expiresAt)

	SuccessWithMessage(c, "User logged in successfully", nil)
}

// Logout 退出登录
// @Summary 退出登录
// @Tags 认证
// @Produce json
// @Success 200 {object} Response "User logged out successfully"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	clearTokenCookie(c)
	SuccessWithMessage(c, "User logged out successfully", nil)
}

// Me 获取当前用户
// @Summary 获取当前用户
// @Description 返回当前登录用户，不包含密码
// @Tags 认证
// @Produce json
// @Success 200 {object} models.User
// @Failure 400 {object} Response "Invalid user"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "User not found"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if len(userID) != models.IDLength {
		BadRequest(c, "Invalid user")
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "User not found")
			return
		}
		InternalError(c, config.SafeErrorMessage(err, "Failed to load user"))
		return
	}

	Success(c, user)
}
