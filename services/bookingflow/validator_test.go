package bookingflow

import (
	"testing"

	"shujia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() models.BookingFormData {
	return models.BookingFormData{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "07123456789",
		StartedTime: "09:00",
		ScheduleAt:  "2026-09-02",
		PostCode:    "E1 6AN",
		Address:     "1 Main Street",
		City:        "London",
	}
}

func TestValidateBookingForm(t *testing.T) {
	v := NewValidator()

	t.Run("valid form passes", func(t *testing.T) {
		assert.Empty(t, v.ValidateBookingForm(validForm()))
	})

	tests := []struct {
		name      string
		mutate    func(*models.BookingFormData)
		wantField string
	}{
		{"missing name", func(f *models.BookingFormData) { f.Name = "" }, "name"},
		{"missing email", func(f *models.BookingFormData) { f.Email = "" }, "email"},
		{"invalid email", func(f *models.BookingFormData) { f.Email = "not-an-email" }, "email"},
		{"missing phone", func(f *models.BookingFormData) { f.Phone = "" }, "phone"},
		{"missing started time", func(f *models.BookingFormData) { f.StartedTime = "" }, "started_time"},
		{"started time outside slots", func(f *models.BookingFormData) { f.StartedTime = "13:00" }, "started_time"},
		{"missing schedule date", func(f *models.BookingFormData) { f.ScheduleAt = "" }, "schedule_at"},
		{"malformed schedule date", func(f *models.BookingFormData) { f.ScheduleAt = "02-09-2026" }, "schedule_at"},
		{"missing post code", func(f *models.BookingFormData) { f.PostCode = "" }, "post_code"},
		{"missing address", func(f *models.BookingFormData) { f.Address = "" }, "address"},
		{"missing city", func(f *models.BookingFormData) { f.City = "" }, "city"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			violations := v.ValidateBookingForm(form)
			require.Len(t, violations, 1)
			assert.Equal(t, tt.wantField, violations[0].Field)
			assert.NotEmpty(t, violations[0].Message)
		})
	}

	t.Run("empty form reports every field", func(t *testing.T) {
		violations := v.ValidateBookingForm(models.BookingFormData{})
		assert.Len(t, violations, 8)
	})
}

func TestValidatePayment(t *testing.T) {
	v := NewValidator()
	proof := &models.ProofFile{Name: "receipt.png", Data: []byte("png")}

	t.Run("valid submission passes", func(t *testing.T) {
		sub := models.PaymentSubmission{Proof: proof, ServiceIDs: []int{4, 9}}
		assert.Empty(t, v.ValidatePayment(sub))
	})

	t.Run("missing proof", func(t *testing.T) {
		sub := models.PaymentSubmission{ServiceIDs: []int{4}}
		violations := v.ValidatePayment(sub)
		require.Len(t, violations, 1)
		assert.Equal(t, "proof", violations[0].Field)
	})

	t.Run("empty service ids", func(t *testing.T) {
		sub := models.PaymentSubmission{Proof: proof}
		violations := v.ValidatePayment(sub)
		require.Len(t, violations, 1)
		assert.Equal(t, "service_ids", violations[0].Field)
	})
}
