package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/campaign-demo-api/internal/config"
	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/pkg/apiErrors"
)

const (
	RolePresenter = "presenter"

	defaultTokenTTL = 24 * time.Hour
)

type Authenticator interface {
	Login(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service autentica o único apresentador configurado por ambiente
type Service struct {
	username     string
	passwordHash []byte
	secretKey    []byte
	tokenTTL     time.Duration
	now          func() time.Time
}

// NewService aceita PRESENTER_PASSWORD em texto puro ou já como hash bcrypt ($2a$/$2b$).
// Sem senha configurada o login fica desativado.
func NewService(cfg *config.Config) (*Service, error) {
	if cfg.SecretKey == "" {
		return nil, ErrMissingSecretKey
	}

	s := &Service{
		username:  strings.TrimSpace(cfg.Auth.PresenterUsername),
		secretKey: []byte(cfg.SecretKey),
		tokenTTL:  cfg.Auth.TokenTTL,
		now:       time.Now,
	}
	if s.tokenTTL <= 0 {
		s.tokenTTL = defaultTokenTTL
	}

	password := cfg.Auth.PresenterPassword
	switch {
	case password == "":
		logrus.Warn("PRESENTER_PASSWORD vazio, login do apresentador desativado")
	case isBcryptHash(password):
		s.passwordHash = []byte(password)
	default:
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.passwordHash = hashed
	}

	return s, nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

func (s *Service) Login(username, password string) (string, error) {
	// Validação de entrada
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	if len(s.passwordHash) == 0 {
		return "", NewAuthError(ErrLoginDisabled, apiErrors.ErrUserDisabled, "Login desativado").ForUser(username)
	}

	username = strings.TrimSpace(username)

	// usuário errado e senha errada devolvem o mesmo erro
	if !strings.EqualFold(username, s.username) {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuário ou senha incorretos").ForUser(username)
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuário ou senha incorretos").ForUser(username)
	}

	token, err := s.generateJWT(s.username)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(username string) (string, error) {
	now := s.now()
	claims := domain.Claims{
		Username: username,
		Role:     RolePresenter,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "claims inválidas")
	}
	if claims.Role != RolePresenter {
		return nil, NewAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "papel sem acesso").ForUser(claims.Username)
	}

	return claims, nil
}
