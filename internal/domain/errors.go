package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrClubNotFound         = errors.New("club not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

var (
	ErrVenueConflict        = errors.New("venue and time conflict with another event")
	ErrEventFull            = errors.New("event is full")
	ErrAlreadyRegistered    = errors.New("student is already registered for this event")
	ErrRegistrationPending  = errors.New("registration is already pending approval")
	ErrRegistrationResolved = errors.New("registration has already been resolved")
)

var (
	ErrEmailTaken     = errors.New("email is already registered")
	ErrCollegeIDTaken = errors.New("college id is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
