package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	clientRepo "vitago/database/repository/client"
	providerRepo "vitago/database/repository/provider"
	"vitago/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": msg,
		"code":  0,
	})
}

// checkAuthCache compares the computed token hash against the auth cache.
// Returns (authorized, found). On a hit the key TTL is refreshed.
func checkAuthCache(ctx context.Context, cacheKey, computedHash string) (bool, bool) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		log.Printf("WARNING: Auth cache client not available. Falling back to DB lookup.")
		return false, false
	}
	cachedHash, err := authCache.Get(ctx, cacheKey).Result()
	if err == nil {
		if cachedHash == computedHash {
			_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			return true, true
		}
		return false, true
	}
	if err != redis.Nil {
		log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
	}
	return false, false
}

func storeAuthCache(ctx context.Context, cacheKey, computedHash string) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return
	}
	_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
}

// JWTAuthProviderMiddleware authenticates a provider token. The token hash
// is checked against the auth cache first, then the stored provider record.
// Sets "providerID" in the context on success.
func JWTAuthProviderMiddleware(repo providerRepo.ProviderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		providerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || providerID == "" {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + providerID

		if ok, found := checkAuthCache(ctx, cacheKey, computedHash); found {
			if !ok {
				abortUnauthorized(c, "Token mismatch")
				return
			}
			c.Set("providerID", providerID)
			c.Next()
			return
		}

		p, err := repo.GetByID(providerID)
		if err != nil || p == nil {
			abortUnauthorized(c, "Authentication error")
			return
		}
		if p.Security.TokenHash == "" || p.Security.TokenHash != computedHash {
			abortUnauthorized(c, "Token mismatch")
			return
		}

		storeAuthCache(ctx, cacheKey, computedHash)
		c.Set("providerID", providerID)
		c.Next()
	}
}

// JWTAuthClientMiddleware authenticates a client token, same scheme as the
// provider variant. Sets "clientID" in the context on success.
func JWTAuthClientMiddleware(repo clientRepo.ClientRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		clientID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || clientID == "" {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + clientID

		if ok, found := checkAuthCache(ctx, cacheKey, computedHash); found {
			if !ok {
				abortUnauthorized(c, "Token mismatch")
				return
			}
			c.Set("clientID", clientID)
			c.Next()
			return
		}

		cl, err := repo.GetByID(clientID)
		if err != nil || cl == nil {
			abortUnauthorized(c, "Authentication error")
			return
		}
		if cl.Security.TokenHash == "" || cl.Security.TokenHash != computedHash {
			abortUnauthorized(c, "Token mismatch")
			return
		}

		storeAuthCache(ctx, cacheKey, computedHash)
		c.Set("clientID", clientID)
		c.Next()
	}
}
