package models

import "time"

// StartTimeSlots are the hour slots a home service can start at.
var StartTimeSlots = []string{"08:00", "09:00", "10:00", "11:00", "12:00"}

// Cities the service area currently covers.
var Cities = []string{
	"London",
	"Birmingham",
	"Manchester",
	"Liverpool",
	"Bristol",
	"Sheffield",
	"Glasgow",
	"Leeds",
	"Edinburgh",
	"Leichester",
}

// BookingFormData collects customer identity, schedule and address for one
// booking. One instance per session; persisted only after it validates.
type BookingFormData struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	StartedTime string `json:"started_time" validate:"required,oneof=08:00 09:00 10:00 11:00 12:00"`
	ScheduleAt  string `json:"schedule_at" validate:"required,datetime=2006-01-02"`
	PostCode    string `json:"post_code" validate:"required"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city" validate:"required"`
}

// NewBookingFormData returns an empty form with the schedule date defaulted
// to tomorrow, calendar-local.
func NewBookingFormData(now time.Time) BookingFormData {
	return BookingFormData{
		ScheduleAt: now.AddDate(0, 0, 1).Format("2006-01-02"),
	}
}
