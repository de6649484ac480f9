package otp

import (
	"alcyxob/health-tracker/internal/config"
	"alcyxob/health-tracker/internal/domain"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
)

// messageCentralSender implements Sender against the Message Central
// verification v3 API.
type messageCentralSender struct {
	baseURL     string
	customerID  string
	authToken   string
	countryCode string
	httpClient  *http.Client
}

// NewMessageCentralSender creates a Sender backed by Message Central.
func NewMessageCentralSender(cfg config.OTPConfig) Sender {
	return &messageCentralSender{
		baseURL:     cfg.BaseURL,
		customerID:  cfg.CustomerID,
		authToken:   cfg.AuthToken,
		countryCode: cfg.CountryCode,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// verificationResponse mirrors the provider's envelope. responseCode is
// sometimes a number and sometimes a string, hence json.Number.
type verificationResponse struct {
	ResponseCode json.Number `json:"responseCode"`
	Message      string      `json:"message"`
	Data         struct {
		VerificationID string `json:"verificationId"`
	} `json:"data"`
}

func (r *verificationResponse) ok() bool {
	return r.ResponseCode.String() == "200"
}

func (s *messageCentralSender) checkConfig() error {
	if s.customerID == "" || s.authToken == "" {
		return ErrConfigMissing
	}
	return nil
}

// SendVerification triggers an SMS OTP via POST /verification/v3/send.
// The provider wants the local part of the number (last 10 digits) with
// the country code passed separately.
func (s *messageCentralSender) SendVerification(ctx context.Context, phoneNumber string) (string, error) {
	if err := s.checkConfig(); err != nil {
		return "", err
	}

	digits := domain.DigitsOnly(phoneNumber)
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}

	q := url.Values{}
	q.Set("countryCode", s.countryCode)
	q.Set("customerId", s.customerID)
	q.Set("flowType", "SMS")
	q.Set("mobileNumber", digits)
	endpoint := fmt.Sprintf("%s/verification/v3/send?%s", s.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("authToken", s.authToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("message central send request: %w", err)
	}
	defer resp.Body.Close()

	var body verificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("message central send response: %w", err)
	}

	if !body.ok() {
		log.Printf("WARN: Message Central send rejected: code=%s message=%q", body.ResponseCode, body.Message)
		if body.Message != "" {
			return "", fmt.Errorf("%w: %s", ErrSendFailed, body.Message)
		}
		return "", ErrSendFailed
	}

	return body.Data.VerificationID, nil
}

// ConfirmVerification validates the code via GET /verification/v3/validateOtp.
// Only an explicit 200 response code counts as verified; any other
// provider response is a plain false, while transport failures propagate.
func (s *messageCentralSender) ConfirmVerification(ctx context.Context, verificationID, code, phoneNumber string) (bool, error) {
	if err := s.checkConfig(); err != nil {
		return false, err
	}

	q := url.Values{}
	q.Set("verificationId", verificationID)
	q.Set("code", code)
	endpoint := fmt.Sprintf("%s/verification/v3/validateOtp?%s", s.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("authToken", s.authToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("message central validate request: %w", err)
	}
	defer resp.Body.Close()

	var body verificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("message central validate response: %w", err)
	}

	return body.ok(), nil
}
