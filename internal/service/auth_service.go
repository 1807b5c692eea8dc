package service

import (
	"context"
	"errors"
	"time"

	"github.com/YazanAlgaleez/flowmart-ai/internal/models"
	"github.com/YazanAlgaleez/flowmart-ai/internal/recommender"
	"github.com/YazanAlgaleez/flowmart-ai/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("el usuario ya existe")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrStoreUnavailable   = errors.New("store de usuarios no disponible")
)

type AuthService struct {
	users     *repository.UserRepository // nil si Mongo no está
	engine    *recommender.Engine
	jwtSecret []byte
}

func NewAuthService(users *repository.UserRepository, engine *recommender.Engine, secret string) *AuthService {
	return &AuthService{users: users, engine: engine, jwtSecret: []byte(secret)}
}

// ================== REGISTER & LOGIN ==================

// Register crea la cuenta y da de alta el perfil en el motor.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (*models.UserDoc, error) {
	if s.users == nil {
		return nil, ErrStoreUnavailable
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	userID, err := s.users.NextUserID(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.UserDoc{
		UserID:       userID,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.users.Insert(ctx, u); err != nil {
		// el índice único de username cierra la carrera entre el
		// find previo y este insert
		return nil, mapUserInsertErr(err)
	}

	s.engine.AddUser(u.UserID, u.Username)
	return u, nil
}

// mapUserInsertErr traduce el duplicate key del índice único de
// username a ErrUserExists.
func mapUserInsertErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrUserExists
	}
	return err
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.UserDoc, error) {
	if s.users == nil {
		return "", nil, ErrStoreUnavailable
	}

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_ = s.users.UpdateByID(ctx, u.UserID, bson.M{"lastLogin": now})
	u.LastLogin = now

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      u.UserID,
		"username": u.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	sToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return sToken, u, nil
}

// ================== PROFILE ==================

// ProfileUpdate enumera los campos opcionales actualizables del perfil
// (nada de kwargs dinámicos: struct explícito).
type ProfileUpdate struct {
	FullName  *string
	Age       *int
	Country   *string
	Interests *[]string
}

// UpdateProfile aplica un $set parcial con los campos presentes.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, data ProfileUpdate) error {
	if s.users == nil {
		return ErrStoreUnavailable
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	update := bson.M{}
	if data.FullName != nil {
		update["profile.fullName"] = *data.FullName
	}
	if data.Age != nil {
		update["profile.age"] = *data.Age
	}
	if data.Country != nil {
		update["profile.country"] = *data.Country
	}
	if data.Interests != nil {
		update["profile.interests"] = *data.Interests
	}
	if len(update) == 0 {
		return errors.New("no hay campos para actualizar")
	}

	return s.users.UpdateByID(ctx, userID, update)
}

func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*models.UserDoc, error) {
	if s.users == nil {
		return nil, ErrStoreUnavailable
	}
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) ListUsers(ctx context.Context, limit int64) ([]models.UserDoc, error) {
	if s.users == nil {
		return nil, ErrStoreUnavailable
	}
	return s.users.List(ctx, limit)
}
