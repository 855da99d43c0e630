package usecase

import (
	"context"
	"time"

	"github.com/krypton4149/washnow/internal/pkg/jwt"
	"github.com/krypton4149/washnow/internal/pkg/logger"
	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/krypton4149/washnow/services/flow"
)

// Login authenticates against the backend. The backend call happens outside
// the state lock; on failure nothing is applied and the session stays on the
// auth screen.
func (uc *FlowUC) Login(ctx context.Context, sessionID string, req *models.LoginRequest) (*models.AuthResponse, *models.FlowState, error) {
	uc.mu.Lock()
	state, err := uc.stateLocked(sessionID)
	if err != nil {
		uc.mu.Unlock()
		return nil, nil, err
	}
	chosenRole := state.role
	uc.mu.Unlock()

	profile, err := uc.flowGW.Login(ctx, req)
	if err != nil {
		logger.WarnCtx(ctx, "Login failed",
			logger.String("session_id", sessionID),
			logger.Err(err))
		return nil, nil, err
	}

	role := profile.Role
	if role == "" {
		role = chosenRole
	}
	if role == "" {
		role = models.RoleCustomer
	}

	token, expiresAt, err := jwt.GenerateToken(sessionID, profile.ID, role, uc.cfg)
	if err != nil {
		return nil, nil, err
	}

	uc.mu.Lock()
	state, err = uc.stateLocked(sessionID)
	if err != nil {
		uc.mu.Unlock()
		return nil, nil, err
	}
	state.authenticated = true
	state.userID = profile.ID
	state.role = role
	state.screen = homeScreen(role)
	view := state.view()
	uc.mu.Unlock()

	now := models.Now()
	session := &models.Session{
		SessionID:     sessionID,
		UserID:        profile.ID,
		Authenticated: true,
		Role:          role,
		Profile:       profile,
		UpdatedAt:     now,
		CreatedAt:     now,
	}
	if err := uc.flowRepo.SaveSession(ctx, session); err != nil {
		logger.WarnCtx(ctx, "Failed to persist session after login",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "User logged in",
		logger.String("session_id", sessionID),
		logger.String("user_id", profile.ID),
		logger.String("role", string(role)))

	return &models.AuthResponse{Token: token, ExpiresAt: expiresAt, Profile: profile}, view, nil
}

// Logout clears the session locally and returns immediately. The backend is
// told in the background and its answer is only logged: local state is the
// source of truth for navigation and the remote session is eventually
// consistent.
func (uc *FlowUC) Logout(ctx context.Context, sessionID string) (*models.FlowState, error) {
	uc.mu.Lock()
	state, err := uc.stateLocked(sessionID)
	if err != nil {
		uc.mu.Unlock()
		return nil, err
	}
	userID := state.userID
	*state = flowState{screen: models.ScreenUserChoice}
	view := state.view()
	uc.mu.Unlock()

	if err := uc.flowRepo.DeleteSession(ctx, sessionID); err != nil {
		logger.WarnCtx(ctx, "Failed to delete session record",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := uc.flowGW.Logout(bgCtx, userID); err != nil {
			logger.Warn("Background logout failed",
				logger.String("session_id", sessionID),
				logger.String("user_id", userID),
				logger.Err(err))
		}
		event := &models.LogoutEvent{
			SessionID: sessionID,
			UserID:    userID,
			Timestamp: models.Now(),
		}
		if err := uc.flowGW.PublishUserLogout(bgCtx, event); err != nil {
			logger.Warn("Failed to publish logout event",
				logger.String("session_id", sessionID),
				logger.Err(err))
		}
	}()

	logger.InfoCtx(ctx, "User logged out",
		logger.String("session_id", sessionID),
		logger.String("user_id", userID))
	return view, nil
}

// SetTheme persists the client's theme flag on the session
func (uc *FlowUC) SetTheme(ctx context.Context, sessionID string, dark bool) error {
	session, err := uc.flowRepo.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return flow.ErrSessionNotFound
	}

	session.DarkTheme = dark
	session.UpdatedAt = models.Now()
	return uc.flowRepo.SaveSession(ctx, session)
}
