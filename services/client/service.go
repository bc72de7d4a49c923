package client

import (
	"context"
	"fmt"
	"time"

	clientRepo "vitago/database/repository/client"
	"vitago/models"
	"vitago/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// DefaultClientService is the production implementation.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}

// ClientService defines client account operations.
type ClientService interface {
	RegisterClient(ctx context.Context, c models.Client) (*models.ClientAuthResponse, error)
	AuthenticateClient(ctx context.Context, email, password string) (*models.ClientAuthResponse, error)
	RevokeClientAuthToken(clientID string) error
	GetClientByID(ctx context.Context, id string) (*models.Client, error)
	UpdateClient(ctx context.Context, id string, updates map[string]interface{}) (*models.Client, error)
	DeleteClient(id string) error
}

var _ ClientService = (*DefaultClientService)(nil)

// RegisterClient creates a client account and returns an authenticated session.
func (s *DefaultClientService) RegisterClient(ctx context.Context, c models.Client) (*models.ClientAuthResponse, error) {
	if c.Email == "" || c.Security.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if existing, _ := s.Repo.GetByEmail(c.Email); existing != nil {
		return nil, fmt.Errorf("client with email %s already exists", c.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.Security.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	c.ID = uuid.NewString()
	c.Security = models.Security{PasswordHash: string(hash)}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt

	token, err := utils.GenerateToken(c.ID, c.Email, "client", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	c.Security.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&c); err != nil {
		return nil, err
	}

	c.Security = models.Security{}
	return &models.ClientAuthResponse{Client: c, Token: token}, nil
}

// AuthenticateClient verifies credentials and issues a fresh token.
func (s *DefaultClientService) AuthenticateClient(ctx context.Context, email, password string) (*models.ClientAuthResponse, error) {
	c, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.Security.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(c.ID, c.Email, "client", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	updateDoc := bson.M{"$set": bson.M{"security.tokenHash": tokenHash, "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(c.ID, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	c.Security = models.Security{}
	return &models.ClientAuthResponse{Client: *c, Token: token}, nil
}

// RevokeClientAuthToken clears the stored token hash and the auth cache entry.
func (s *DefaultClientService) RevokeClientAuthToken(clientID string) error {
	updateDoc := bson.M{"$set": bson.M{"security.tokenHash": "", "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(clientID, updateDoc); err != nil {
		return fmt.Errorf("failed to revoke client auth token: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + clientID
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
		zap.L().Error("Failed to clear auth cache on revoke", zap.Error(err))
	}
	return nil
}

func (s *DefaultClientService) GetClientByID(ctx context.Context, id string) (*models.Client, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("client not found: %w", err)
	}
	c.Security = models.Security{}
	return c, nil
}

// UpdateClient merges allowed updates and returns the updated record.
func (s *DefaultClientService) UpdateClient(ctx context.Context, id string, updates map[string]interface{}) (*models.Client, error) {
	if _, err := s.Repo.GetByID(id); err != nil {
		return nil, fmt.Errorf("client not found: %w", err)
	}

	updateFields := bson.M{}
	for key, field := range map[string]string{
		"first_name":   "firstName",
		"last_name":    "lastName",
		"phone_number": "phoneNumber",
		"address":      "address",
		"postal_code":  "postalCode",
		"city":         "city",
	} {
		if v, ok := updates[key].(string); ok && v != "" {
			updateFields[field] = v
		}
	}
	updateFields["updatedAt"] = time.Now()

	if err := s.Repo.UpdateWithDocument(id, bson.M{"$set": updateFields}); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return s.GetClientByID(ctx, id)
}

func (s *DefaultClientService) DeleteClient(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete client with id %s: %w", id, err)
	}
	return nil
}
