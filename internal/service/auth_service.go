package service

import (
	"errors"
	"hr_console/internal/config"
	"hr_console/internal/model"
	"hr_console/internal/repository"
	"hr_console/internal/util"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	OperatorRepo *repository.OperatorRepository
	Cfg          *config.Config
}

func NewAuthService(operatorRepo *repository.OperatorRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		OperatorRepo: operatorRepo,
		Cfg:          cfg,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string          `json:"token"`
	Operator *model.Operator `json:"operator"`
}

// CreateOperator registers a console account with a bcrypt password.
func (s *AuthService) CreateOperator(name, email, password string, role model.OperatorRole) (*model.Operator, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := s.OperatorRepo.FindByEmail(email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = model.RoleAdmin
	}
	op := &model.Operator{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.OperatorRepo.Create(op); err != nil {
		return nil, err
	}
	return op, nil
}

func (s *AuthService) Login(req LoginRequest) (*LoginResponse, error) {
	op, err := s.OperatorRepo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}
	if op.Disabled {
		return nil, util.ErrOperatorDisabled
	}

	token, err := util.GenerateJWT(op, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	op.LastLogin = &now
	_ = s.OperatorRepo.UpdateLastLogin(op.ID, now)

	return &LoginResponse{Token: token, Operator: op}, nil
}

func (s *AuthService) Current(operatorID uint) (*model.Operator, error) {
	op, err := s.OperatorRepo.FindByID(operatorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrOperatorNotFound
	}
	return op, err
}
