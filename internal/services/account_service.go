package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/auth"
	"github.com/influencer-marketplace/backend/internal/config"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/rbac"
	"github.com/influencer-marketplace/backend/internal/repositories"
)

// Defaults seeded on influencer registration so the profile is immediately
// usable; the influencer replaces them via profile update.
const (
	defaultLocation = "Not Set"
	defaultKeywords = "new user, profile not updated"
)

type AccountService struct {
	brandRepo      *repositories.BrandRepo
	influencerRepo *repositories.InfluencerRepo
	auditRepo      *repositories.AuditRepo
	cfg            *config.Config
	log            *zap.Logger
}

func NewAccountService(
	brandRepo *repositories.BrandRepo,
	influencerRepo *repositories.InfluencerRepo,
	auditRepo *repositories.AuditRepo,
	cfg *config.Config,
	log *zap.Logger,
) *AccountService {
	return &AccountService{
		brandRepo:      brandRepo,
		influencerRepo: influencerRepo,
		auditRepo:      auditRepo,
		cfg:            cfg,
		log:            log,
	}
}

func (s *AccountService) RegisterBrand(ctx context.Context, email, password string) (*models.BrandUser, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, apperr.Invalidf("email and password are required")
	}

	if _, err := s.brandRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperr.Conflictf("an account with this email already exists")
	} else if !repositories.IsNotFound(err) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	brand := &models.BrandUser{Email: email, PasswordHash: hash}
	if err := s.brandRepo.Create(ctx, brand); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, apperr.Conflictf("an account with this email already exists")
		}
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &brand.ID,
		ActorType:   models.ActorTypeBrand,
		Action:      "brand_registered",
		EntityType:  "brand_user",
		EntityID:    &brand.ID,
	})

	return brand, nil
}

func (s *AccountService) LoginBrand(ctx context.Context, email, password string) (string, *models.BrandUser, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	brand, err := s.brandRepo.GetByEmail(ctx, email)
	if err != nil || !auth.CheckPassword(password, brand.PasswordHash) {
		return "", nil, apperr.Unauthorizedf("invalid credentials")
	}

	token, err := auth.GenerateJWT(s.cfg.JWTSecret, brand.ID, rbac.RoleBrand, s.cfg.JWTExpiration)
	if err != nil {
		return "", nil, err
	}
	return token, brand, nil
}

func (s *AccountService) RegisterInfluencer(ctx context.Context, email, password, name string) (*models.Influencer, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" || strings.TrimSpace(name) == "" {
		return nil, apperr.Invalidf("email, password and name are required")
	}

	if _, err := s.influencerRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperr.Conflictf("an account with this email already exists")
	} else if !repositories.IsNotFound(err) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	inf := &models.Influencer{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
		Followers:    0,
		Location:     defaultLocation,
		Keywords:     defaultKeywords,
	}
	if err := s.influencerRepo.Create(ctx, inf); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, apperr.Conflictf("an account with this email already exists")
		}
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &inf.ID,
		ActorType:   models.ActorTypeInfluencer,
		Action:      "influencer_registered",
		EntityType:  "influencer",
		EntityID:    &inf.ID,
	})

	return inf, nil
}

func (s *AccountService) LoginInfluencer(ctx context.Context, email, password string) (string, *models.Influencer, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	inf, err := s.influencerRepo.GetByEmail(ctx, email)
	if err != nil || !auth.CheckPassword(password, inf.PasswordHash) {
		return "", nil, apperr.Unauthorizedf("invalid credentials")
	}

	token, err := auth.GenerateJWT(s.cfg.JWTSecret, inf.ID, rbac.RoleInfluencer, s.cfg.JWTExpiration)
	if err != nil {
		return "", nil, err
	}
	return token, inf, nil
}
