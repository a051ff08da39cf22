package usecase

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"nibog_payments/internal/domain/entities"
)

// callbackPayload is the decoded body of a verified gateway callback.

type callbackPayload struct {
	TransactionID string
	Status        entities.PaymentStatus
	Raw           json.RawMessage
}

func decodeCallbackBody(base64Body string) (callbackPayload, error) {
	raw, err := base64.StdEncoding.DecodeString(base64Body)
	if err != nil {
		return callbackPayload{}, errors.New("callback body is not valid base64")
	}

	var body struct {
		Code string `json:"code"`
		Data struct {
			MerchantTransactionID string `json:"merchantTransactionId"`
			State                 string `json:"state"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return callbackPayload{}, errors.New("callback body is not valid json")
	}
	if body.Data.MerchantTransactionID == "" {
		return callbackPayload{}, errors.New("callback body missing merchantTransactionId")
	}

	status := entities.PaymentStatusPending
	switch {
	case body.Code == "PAYMENT_SUCCESS" || body.Data.State == "COMPLETED":
		status = entities.PaymentStatusSuccess
	case body.Code == "PAYMENT_CANCELLED" || body.Data.State == "CANCELLED":
		status = entities.PaymentStatusCancelled
	case body.Code == "PAYMENT_ERROR" || body.Data.State == "FAILED":
		status = entities.PaymentStatusFailed
	}

	return callbackPayload{
		TransactionID: body.Data.MerchantTransactionID,
		Status:        status,
		Raw:           raw,
	}, nil
}
