package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krypton4149/washnow/internal/pkg/models"
)

func TestLoginLandsOnRoleHome(t *testing.T) {
	uc, repo, gw := newTestFlowUC(t)
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	seedSession(uc, "s1", &flowState{screen: models.ScreenAuth, role: models.RoleCustomer})

	profile := &models.UserProfile{ID: "user-1", FullName: "Asha Rao", Role: models.RoleCustomer}
	gw.EXPECT().Login(gomock.Any(), gomock.Any()).Return(profile, nil)

	resp, view, err := uc.Login(context.Background(), "s1", &models.LoginRequest{Email: "asha@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user-1", resp.Profile.ID)
	assert.Equal(t, models.ScreenCustomerHome, view.Screen)

	ownerProfile := &models.UserProfile{ID: "user-2", Role: models.RoleOwner}
	seedSession(uc, "s2", &flowState{screen: models.ScreenAuth})
	gw.EXPECT().Login(gomock.Any(), gomock.Any()).Return(ownerProfile, nil)

	_, view, err = uc.Login(context.Background(), "s2", &models.LoginRequest{Email: "owner@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, models.ScreenOwnerHome, view.Screen)
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	uc, _, gw := newTestFlowUC(t)

	state := &flowState{screen: models.ScreenAuth, role: models.RoleCustomer}
	state.booking = models.BookingContext{Date: strPtr("2025-03-01")}
	seedSession(uc, "s1", state)

	gw.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("invalid credentials"))

	_, _, err := uc.Login(context.Background(), "s1", &models.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	require.Error(t, err)

	view, err := uc.State(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, models.ScreenAuth, view.Screen)
	assert.Equal(t, "2025-03-01", *view.Booking.Date)
}

func TestLogoutIsSynchronouslyLocal(t *testing.T) {
	for name, backendErr := range map[string]error{
		"backend succeeds": nil,
		"backend fails":    errors.New("network down"),
	} {
		t.Run(name, func(t *testing.T) {
			uc, repo, gw := newTestFlowUC(t)
			repo.EXPECT().DeleteSession(gomock.Any(), "s1").Return(nil)

			background := make(chan struct{})
			gw.EXPECT().Logout(gomock.Any(), "user-1").Return(backendErr).AnyTimes()
			gw.EXPECT().PublishUserLogout(gomock.Any(), gomock.Any()).
				DoAndReturn(func(context.Context, *models.LogoutEvent) error {
					close(background)
					return nil
				}).AnyTimes()

			seedSession(uc, "s1", customerState(models.ScreenSettings))

			// The transition is visible before the backend answers
			view, err := uc.Logout(context.Background(), "s1")
			require.NoError(t, err)
			assert.Equal(t, models.ScreenUserChoice, view.Screen)
			assert.Equal(t, models.BookingContext{}, view.Booking)

			select {
			case <-background:
			case <-time.After(2 * time.Second):
				t.Fatal("background logout never ran")
			}
		})
	}
}

func TestSetTheme(t *testing.T) {
	uc, repo, _ := newTestFlowUC(t)

	session := &models.Session{SessionID: "s1", DarkTheme: false}
	repo.EXPECT().GetSession(gomock.Any(), "s1").Return(session, nil)
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Session) error {
			assert.True(t, s.DarkTheme)
			return nil
		})

	require.NoError(t, uc.SetTheme(context.Background(), "s1", true))
}
