package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forhad-fhj/SkillBridge/auth"
	"github.com/forhad-fhj/SkillBridge/models"
	"github.com/forhad-fhj/SkillBridge/storage"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	users      storage.UserStore
	jwtService *auth.JWTService
	googleAuth auth.GoogleVerifier
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	users storage.UserStore,
	jwtService *auth.JWTService,
	googleAuth auth.GoogleVerifier,
) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
		googleAuth: googleAuth,
	}
}

// Register handles user registration with email/password
// @Summary Register a new user
// @Description Register a new user with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.AuthResponse "Registration successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[AuthHandler] Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to process registration",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	user := &models.User{
		Email:    req.Email,
		Name:     strings.TrimSpace(req.Name),
		Password: hashedPassword,
		Provider: models.ProviderEmail,
	}

	if err := h.users.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "Registration failed",
				Code:    http.StatusConflict,
				Details: err.Error(),
			})
			return
		}
		log.Printf("[AuthHandler] Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to process registration",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	// Generate JWT token
	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[AuthHandler] User registered: %s", user.Email)
	c.JSON(http.StatusCreated, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "Registration successful",
	})
}

// Login handles user login with email/password
// @Summary Login user
// @Description Login with email and password to get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Invalid email or password",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	// Check if user registered with Google
	if user.Password == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "This account uses Google Sign-In. Please login with Google.",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	// Verify password
	if !auth.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Invalid email or password",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	// Generate JWT token
	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[AuthHandler] User logged in: %s", user.Email)
	c.JSON(http.StatusOK, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// GoogleLogin handles Google SSO authentication
// @Summary Login with Google
// @Description Login or register using Google SSO ID token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.GoogleAuthRequest true "Google auth request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid Google token"
// @Failure 403 {object} models.ErrorResponse "Account outside the allowed domain"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Failure 503 {object} models.ErrorResponse "Google Sign-In not configured"
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req models.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	if h.googleAuth == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: "Google Sign-In is not configured",
			Code:  http.StatusServiceUnavailable,
		})
		return
	}

	googleUser, err := h.googleAuth.VerifyIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		log.Printf("[AuthHandler] Failed to verify Google token: %v", err)
		status, message := http.StatusUnauthorized, "Invalid Google token"
		switch {
		case errors.Is(err, auth.ErrGoogleNotConfigured):
			status, message = http.StatusServiceUnavailable, "Google Sign-In is not configured"
		case errors.Is(err, auth.ErrHostedDomain):
			status, message = http.StatusForbidden, "Google account is not allowed"
		}
		c.JSON(status, models.ErrorResponse{
			Error:   message,
			Code:    status,
			Details: err.Error(),
		})
		return
	}

	user, err := h.googleUser(c, googleUser)
	if err != nil {
		log.Printf("[AuthHandler] Failed to resolve Google user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to create account",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	// Generate JWT token
	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[AuthHandler] Google user logged in: %s", user.Email)
	c.JSON(http.StatusOK, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// GetProfile retrieves the current user's profile
// @Summary Get user profile
// @Description Get the authenticated user's profile information
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse "User profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "User not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		User: user,
	})
}

// UpdateProfile updates the current user's profile
// @Summary Update user profile
// @Description Update the authenticated user's profile (name)
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest true "Update profile request"
// @Success 200 {object} models.ProfileResponse "Profile updated"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Name must not be blank",
			Code:  http.StatusBadRequest,
		})
		return
	}

	if err := h.users.UpdateUserName(c.Request.Context(), claims.Email, name); err != nil {
		log.Printf("[AuthHandler] Failed to update profile: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to update profile",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "User not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	log.Printf("[AuthHandler] Profile updated: %s", claims.Email)
	c.JSON(http.StatusOK, models.ProfileResponse{
		User:    user,
		Message: "Profile updated successfully",
	})
}

// googleUser finds the account for a verified Google identity, linking an
// existing email account or creating a new one.
func (h *AuthHandler) googleUser(c *gin.Context, info *auth.GoogleUserInfo) (*models.User, error) {
	ctx := c.Request.Context()

	user, err := h.users.GetUserByGoogleID(ctx, info.GoogleID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	user, err = h.users.GetUserByEmail(ctx, info.Email)
	switch {
	case err == nil:
		if err := h.users.LinkGoogleAccount(ctx, user.Email, info.GoogleID); err != nil {
			return nil, err
		}
		user.GoogleID = info.GoogleID
		user.Provider = models.ProviderGoogle
		log.Printf("[AuthHandler] Linked Google account: %s", user.Email)
		return user, nil
	case !errors.Is(err, storage.ErrNotFound):
		return nil, err
	}

	user = &models.User{
		Email:    info.Email,
		Name:     info.Name,
		Provider: models.ProviderGoogle,
		GoogleID: info.GoogleID,
	}
	if err := h.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	log.Printf("[AuthHandler] New Google user created: %s", user.Email)
	return user, nil
}
