package models

// Screen identifies a single screen of the mobile client. Exactly one screen
// is current for a session at any time, and only the flow service changes it.
type Screen string

const (
	ScreenOnboarding               Screen = "onboarding"
	ScreenUserChoice               Screen = "user-choice"
	ScreenAuth                     Screen = "auth"
	ScreenCustomerHome             Screen = "customer-home"
	ScreenOwnerHome                Screen = "owner-home"
	ScreenBookWash                 Screen = "book-wash"
	ScreenFindingCenter            Screen = "finding-center"
	ScreenBookingConfirmed         Screen = "booking-confirmed"
	ScreenPayment                  Screen = "payment"
	ScreenPaymentConfirmed         Screen = "payment-confirmed"
	ScreenScheduleForLater         Screen = "schedule-for-later"
	ScreenScheduleBooking          Screen = "schedule-booking"
	ScreenConfirmBooking           Screen = "confirm-booking"
	ScreenSchedulePayment          Screen = "schedule-payment"
	ScreenSchedulePaymentConfirmed Screen = "schedule-payment-confirmed"
	ScreenBookingHistory           Screen = "booking-history"
	ScreenProfile                  Screen = "profile"
	ScreenEditProfile              Screen = "edit-profile"
	ScreenChangePassword           Screen = "change-password"
	ScreenHelpSupport              Screen = "help-support"
	ScreenSettings                 Screen = "settings"
	ScreenNotifications            Screen = "notifications"
)

var validScreens = map[Screen]bool{
	ScreenOnboarding:               true,
	ScreenUserChoice:               true,
	ScreenAuth:                     true,
	ScreenCustomerHome:             true,
	ScreenOwnerHome:                true,
	ScreenBookWash:                 true,
	ScreenFindingCenter:            true,
	ScreenBookingConfirmed:         true,
	ScreenPayment:                  true,
	ScreenPaymentConfirmed:         true,
	ScreenScheduleForLater:         true,
	ScreenScheduleBooking:          true,
	ScreenConfirmBooking:           true,
	ScreenSchedulePayment:          true,
	ScreenSchedulePaymentConfirmed: true,
	ScreenBookingHistory:           true,
	ScreenProfile:                  true,
	ScreenEditProfile:              true,
	ScreenChangePassword:           true,
	ScreenHelpSupport:              true,
	ScreenSettings:                 true,
	ScreenNotifications:            true,
}

// Valid reports whether s is a known screen tag.
func (s Screen) Valid() bool {
	return validScreens[s]
}
