package dto

import (
	"encoding/json"
	"testing"

	"github.com/savioruz/kopi/internal/domains/payments/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackHistoryResponse_FromModel(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		res, err := CallbackHistoryResponse{}.FromModel(repository.PaymentCallback{
			Source:         "notify",
			TranID:         "T1",
			Status:         "00",
			SignatureValid: true,
			Outcome:        "success",
			Payload:        []byte(`{"tranID":"T1","orderid":"1001"}`),
		})

		require.NoError(t, err)
		assert.Equal(t, "notify", res.Source)
		assert.Equal(t, "1001", res.Payload["orderid"])
	})

	t.Run("empty payload", func(t *testing.T) {
		res, err := CallbackHistoryResponse{}.FromModel(repository.PaymentCallback{TranID: "T1"})

		require.NoError(t, err)
		assert.Nil(t, res.Payload)
	})

	t.Run("error: payload does not decode", func(t *testing.T) {
		res, err := CallbackHistoryResponse{}.FromModel(repository.PaymentCallback{
			TranID:  "T1",
			Outcome: "pending",
			Payload: []byte(`{"tranID":`),
		})

		assert.Error(t, err)
		assert.Nil(t, res.Payload)
		assert.Equal(t, "T1", res.TranID)
		assert.Equal(t, "pending", res.Outcome)
	})
}

func TestInitiatePaymentRequest_Amount(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "string", body: `{"order_id":"1001","amount":"10.00"}`, want: "10.00"},
		{name: "number", body: `{"order_id":"1001","amount":10.5}`, want: "10.5"},
		{name: "integer", body: `{"order_id":"1001","amount":12}`, want: "12"},
		{name: "not a number", body: `{"order_id":"1001","amount":"ten"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req InitiatePaymentRequest
			err := json.Unmarshal([]byte(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Amount.String())
		})
	}
}
