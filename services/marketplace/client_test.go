package marketplace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shujia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(serverURL string) *HTTPClient {
	return NewHTTPClient(serverURL, 5*time.Second, zap.NewNop())
}

func TestServiceBySlug(t *testing.T) {
	t.Run("decodes the data envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/service/deep-cleaning", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":{"id":7,"name":"Deep Cleaning","slug":"deep-cleaning","price":100000,"duration":"3h","thumbnail":"t.png","about":"..."}}`))
		}))
		defer server.Close()

		svc, err := newTestClient(server.URL).ServiceBySlug(context.Background(), "deep-cleaning")
		require.NoError(t, err)
		assert.Equal(t, 7, svc.ID)
		assert.Equal(t, "deep-cleaning", svc.Slug)
		assert.InDelta(t, 100000.0, svc.Price, 1e-9)
		assert.Equal(t, "3h", svc.Duration)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).ServiceBySlug(context.Background(), "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status=404")
	})

	t.Run("unreachable host is an error", func(t *testing.T) {
		_, err := newTestClient("http://127.0.0.1:1").ServiceBySlug(context.Background(), "deep-cleaning")
		assert.Error(t, err)
	})
}

func TestSubmitBookingTransaction(t *testing.T) {
	booking := &models.BookingFormData{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "07123456789",
		StartedTime: "09:00",
		ScheduleAt:  "2026-09-02",
		PostCode:    "E1 6AN",
		Address:     "1 Main Street",
		City:        "London",
	}
	proof := &models.ProofFile{Name: "receipt.png", ContentType: "image/png", Data: []byte("png-bytes")}

	t.Run("posts every field as multipart and decodes the receipt", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/booking-transaction", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))

			assert.Equal(t, "Jane Doe", r.FormValue("name"))
			assert.Equal(t, "jane@example.com", r.FormValue("email"))
			assert.Equal(t, "07123456789", r.FormValue("phone"))
			assert.Equal(t, "1 Main Street", r.FormValue("address"))
			assert.Equal(t, "London", r.FormValue("city"))
			assert.Equal(t, "E1 6AN", r.FormValue("post_code"))
			assert.Equal(t, "09:00", r.FormValue("started_time"))
			assert.Equal(t, "2026-09-02", r.FormValue("schedule_at"))
			assert.Equal(t, "7", r.FormValue("service_ids[0]"))
			assert.Equal(t, "3", r.FormValue("service_ids[1]"))

			file, header, err := r.FormFile("proof")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "receipt.png", header.Filename)

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"data":{"booking_trx_id":"TRX-1001","email":"jane@example.com"}}`))
		}))
		defer server.Close()

		receipt, err := newTestClient(server.URL).SubmitBookingTransaction(context.Background(), BookingTransaction{
			Proof:      proof,
			Booking:    booking,
			ServiceIDs: []int{7, 3},
		})
		require.NoError(t, err)
		assert.Equal(t, "TRX-1001", receipt.BookingTrxID)
		assert.Equal(t, "jane@example.com", receipt.Email)
	})

	t.Run("nil booking omits the form fields", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			_, hasName := r.MultipartForm.Value["name"]
			assert.False(t, hasName)
			assert.Equal(t, "7", r.FormValue("service_ids[0]"))
			w.Write([]byte(`{"data":{"booking_trx_id":"TRX-1002","email":""}}`))
		}))
		defer server.Close()

		receipt, err := newTestClient(server.URL).SubmitBookingTransaction(context.Background(), BookingTransaction{
			Proof:      proof,
			ServiceIDs: []int{7},
		})
		require.NoError(t, err)
		assert.Equal(t, "TRX-1002", receipt.BookingTrxID)
	})

	t.Run("accepts 200 as well as 201", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"booking_trx_id":"TRX-1003","email":"jane@example.com"}}`))
		}))
		defer server.Close()

		receipt, err := newTestClient(server.URL).SubmitBookingTransaction(context.Background(), BookingTransaction{
			Proof:      proof,
			Booking:    booking,
			ServiceIDs: []int{7},
		})
		require.NoError(t, err)
		assert.Equal(t, "TRX-1003", receipt.BookingTrxID)
	})

	t.Run("any other status is an error", func(t *testing.T) {
		for _, status := range []int{http.StatusAccepted, http.StatusBadRequest, http.StatusInternalServerError} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			_, err := newTestClient(server.URL).SubmitBookingTransaction(context.Background(), BookingTransaction{
				Proof:      proof,
				Booking:    booking,
				ServiceIDs: []int{7},
			})
			assert.Error(t, err, "status %d", status)
			server.Close()
		}
	})
}
