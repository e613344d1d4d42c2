package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/vcdice-69/Parked-Up/internal/store"
	"github.com/vcdice-69/Parked-Up/pkg/logger"
	"github.com/vcdice-69/Parked-Up/prometheus"
)

// Signup registers a new account after checking the email is not taken
func (h *Handler) Signup(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.SignupCounter.Inc()

	// Parse request
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		PhoneNo  string `json:"phone_no"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse signup request", zap.Error(err))
		prometheus.RecordAccountError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request"})
	}

	// Check if user already exists - track DB query
	defer prometheus.TrackDBOperation("query")(time.Now())
	if _, err := h.accounts.Find(req.Email); err == nil {
		log.Warn("Email already registered", zap.String("email", req.Email))
		prometheus.RecordAccountError("email_already_exists")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Email already exists!"})
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("Failed to look up account", zap.String("email", req.Email), zap.Error(err))
		prometheus.RecordAccountError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to create account!"})
	}

	// Create new account - track DB insert operation
	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.accounts.Create(req.Username, req.Email, req.PhoneNo, req.Password); err != nil {
		// The legacy API reports validation rejects and insert faults alike
		// as a failed creation.
		log.Error("Failed to create account", zap.String("email", req.Email), zap.Error(err))
		prometheus.RecordAccountError("account_creation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to create account!"})
	}

	// Update registered accounts metric
	go h.updateAccountCount()

	log.Info("Account created", zap.String("email", req.Email))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Account created successfully!"})
}

// Login authenticates a user by email and password
func (h *Handler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	// Parse request
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAccountError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request"})
	}

	// Check credentials - track DB query
	defer prometheus.TrackDBOperation("query")(time.Now())
	acc, err := h.accounts.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			log.Warn("Invalid credentials", zap.String("email", req.Email))
			prometheus.RecordAccountError("invalid_credentials")
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid email or password"})
		}
		log.Error("Failed to authenticate", zap.String("email", req.Email), zap.Error(err))
		prometheus.RecordAccountError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Login failed"})
	}

	log.Info("User logged in", zap.String("email", acc.Email))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": acc})
}

// GetProfile returns the account registered under the email path parameter
func (h *Handler) GetProfile(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAccountOperation("profile")

	email := c.Param("email")

	defer prometheus.TrackDBOperation("query")(time.Now())
	acc, err := h.accounts.Find(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("User not found", zap.String("email", email))
			prometheus.RecordAccountError("user_not_found")
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "User not found."})
		}
		log.Error("Failed to look up account", zap.String("email", email), zap.Error(err))
		prometheus.RecordAccountError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to fetch profile"})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": acc})
}

// UpdateProfile overwrites the account's details, moving favourites to the
// new email when it changes
func (h *Handler) UpdateProfile(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAccountOperation("update")

	// Parse request
	var req struct {
		OldEmail        string `json:"old_email"`
		Email           string `json:"email"`
		Username        string `json:"username"`
		PhoneNo         string `json:"phone_no"`
		Password        string `json:"password"`
		CurrentPassword string `json:"current_password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse update request", zap.Error(err))
		prometheus.RecordAccountError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request"})
	}

	// Check the old email resolves to an account
	defer prometheus.TrackDBOperation("query")(time.Now())
	acc, err := h.accounts.Find(req.OldEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("User not found", zap.String("email", req.OldEmail))
			prometheus.RecordAccountError("user_not_found")
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "User not found!"})
		}
		log.Error("Failed to look up account", zap.String("email", req.OldEmail), zap.Error(err))
		prometheus.RecordAccountError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to update profile!"})
	}

	// Verify the current password when the frontend supplies it
	if req.CurrentPassword != "" && acc.Password != req.CurrentPassword {
		log.Warn("Current password incorrect", zap.String("email", req.OldEmail))
		prometheus.RecordAccountError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Current password is incorrect!"})
	}

	// If the email is changing, make sure the new one is free
	if req.OldEmail != req.Email {
		if _, err := h.accounts.Find(req.Email); err == nil {
			log.Warn("Email already in use", zap.String("email", req.Email))
			prometheus.RecordAccountError("email_already_exists")
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Email already in use!"})
		}
	}

	// An empty new password means keep the current one
	password := req.Password
	if password == "" {
		password = acc.Password
	}

	rec := store.AccountRecord{
		Username: req.Username,
		Email:    req.Email,
		PhoneNo:  req.PhoneNo,
		Password: password,
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.accounts.Update(req.OldEmail, rec); err != nil {
		log.Error("Failed to update profile",
			zap.String("old_email", req.OldEmail),
			zap.String("new_email", req.Email),
			zap.Error(err))
		prometheus.RecordAccountError("profile_update_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to update profile!"})
	}

	log.Info("Profile updated",
		zap.String("old_email", req.OldEmail),
		zap.String("new_email", req.Email))
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "Profile updated successfully!",
		"email":    req.Email,
		"username": req.Username,
		"phone_no": req.PhoneNo,
	})
}

// DeleteAccount removes the account and all of its favourites
func (h *Handler) DeleteAccount(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAccountOperation("delete")

	email := c.Param("email")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.accounts.Delete(email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("User not found", zap.String("email", email))
			prometheus.RecordAccountError("user_not_found")
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "User not found!"})
		}
		log.Error("Failed to delete account", zap.String("email", email), zap.Error(err))
		prometheus.RecordAccountError("account_deletion_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to delete account!"})
	}

	// Update registered accounts metric
	go h.updateAccountCount()

	log.Info("Account deleted", zap.String("email", email))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Account deleted successfully!"})
}
