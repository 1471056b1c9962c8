package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"shujia/models"

	"go.uber.org/zap"
)

// BookingTransaction is the finished submission forwarded to the marketplace.
// Booking may be nil; its fields are then simply omitted from the payload.
type BookingTransaction struct {
	Proof      *models.ProofFile
	Booking    *models.BookingFormData
	ServiceIDs []int
}

type receiptEnvelope struct {
	Data models.TransactionReceipt `json:"data"`
}

// SubmitBookingTransaction POSTs the transaction as multipart/form-data to
// /booking-transaction. Only status 200 or 201 counts as success.
func (c *HTTPClient) SubmitBookingTransaction(ctx context.Context, tx BookingTransaction) (*models.TransactionReceipt, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if tx.Proof != nil {
		part, err := writer.CreateFormFile("proof", tx.Proof.Name)
		if err != nil {
			return nil, fmt.Errorf("marketplace: failed to add proof part: %w", err)
		}
		if _, err := part.Write(tx.Proof.Data); err != nil {
			return nil, fmt.Errorf("marketplace: failed to write proof part: %w", err)
		}
	}

	if tx.Booking != nil {
		fields := []struct {
			key   string
			value string
		}{
			{"name", tx.Booking.Name},
			{"email", tx.Booking.Email},
			{"phone", tx.Booking.Phone},
			{"address", tx.Booking.Address},
			{"city", tx.Booking.City},
			{"post_code", tx.Booking.PostCode},
			{"started_time", tx.Booking.StartedTime},
			{"schedule_at", tx.Booking.ScheduleAt},
		}
		for _, f := range fields {
			if err := writer.WriteField(f.key, f.value); err != nil {
				return nil, fmt.Errorf("marketplace: failed to write field %s: %w", f.key, err)
			}
		}
	}

	for i, id := range tx.ServiceIDs {
		key := fmt.Sprintf("service_ids[%d]", i)
		if err := writer.WriteField(key, strconv.Itoa(id)); err != nil {
			return nil, fmt.Errorf("marketplace: failed to write field %s: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("marketplace: failed to finalize payload: %w", err)
	}

	u := c.baseURL + "/booking-transaction"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return nil, fmt.Errorf("marketplace: failed to build transaction request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("marketplace: transaction submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("marketplace: unexpected transaction response status",
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("marketplace: transaction submission: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var envelope receiptEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("marketplace: failed to decode transaction response: %w", err)
	}
	return &envelope.Data, nil
}
