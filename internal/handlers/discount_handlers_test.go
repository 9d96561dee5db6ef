package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/summitretail/pos-api/internal/logger"
	"github.com/summitretail/pos-api/internal/services"
)

func init() {
	// Initialize logger for tests to avoid panic
	logger.Log = zap.NewNop()
}

// stubDiscountService lets tests script the service layer per call.
type stubDiscountService struct {
	validate func(ctx context.Context, params services.ValidateDiscountParams) (*services.DiscountDecision, error)
	apply    func(ctx context.Context, params services.ApplyDiscountParams) (*services.ApplyDiscountResult, error)
}

func (s *stubDiscountService) ValidateDiscount(ctx context.Context, params services.ValidateDiscountParams) (*services.DiscountDecision, error) {
	return s.validate(ctx, params)
}

func (s *stubDiscountService) ApplyDiscount(ctx context.Context, params services.ApplyDiscountParams) (*services.ApplyDiscountResult, error) {
	return s.apply(ctx, params)
}

func postJSON(t *testing.T, body interface{}, path string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var requestBody []byte
	if str, ok := body.(string); ok {
		requestBody = []byte(str)
	} else {
		var err error
		requestBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(requestBody))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestNewDiscountHandler(t *testing.T) {
	service := &stubDiscountService{}
	handler := NewDiscountHandler(service, nil, nil)

	require.NotNil(t, handler)
	assert.Equal(t, service, handler.discountService)
	assert.NotNil(t, handler.logger)
}

func TestDiscountHandler_ValidateDiscount_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name: "missing employee ID",
			requestBody: ValidateDiscountRequest{
				ProductID:   uuid.New().String(),
				DiscountPct: 10,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name: "missing product ID",
			requestBody: ValidateDiscountRequest{
				EmployeeID:  uuid.New().String(),
				DiscountPct: 10,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name: "zero percentage",
			requestBody: ValidateDiscountRequest{
				EmployeeID:  uuid.New().String(),
				ProductID:   uuid.New().String(),
				DiscountPct: 0,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name: "percentage over 100",
			requestBody: ValidateDiscountRequest{
				EmployeeID:  uuid.New().String(),
				ProductID:   uuid.New().String(),
				DiscountPct: 120,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name: "malformed employee ID",
			requestBody: ValidateDiscountRequest{
				EmployeeID:  "not-a-uuid",
				ProductID:   uuid.New().String(),
				DiscountPct: 10,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid employee ID format",
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewDiscountHandler(&stubDiscountService{}, nil, zap.NewNop())

			w, c := postJSON(t, tt.requestBody, "/discounts/validate")
			handler.ValidateDiscount(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			require.NoError(t, err)
			assert.Contains(t, response["error"], tt.expectedError)
		})
	}
}

func TestDiscountHandler_ValidateDiscount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	employeeID := uuid.New()
	productID := uuid.New()

	service := &stubDiscountService{
		validate: func(_ context.Context, params services.ValidateDiscountParams) (*services.DiscountDecision, error) {
			assert.Equal(t, employeeID, params.EmployeeID)
			assert.Equal(t, productID, params.ProductID)
			assert.Equal(t, float64(15), params.DiscountPct)
			return &services.DiscountDecision{
				Allowed:       false,
				Reason:        "exceeds tier limit",
				MaxAllowedPct: 10,
			}, nil
		},
	}
	handler := NewDiscountHandler(service, nil, zap.NewNop())

	w, c := postJSON(t, ValidateDiscountRequest{
		EmployeeID:  employeeID.String(),
		ProductID:   productID.String(),
		DiscountPct: 15,
	}, "/discounts/validate")
	handler.ValidateDiscount(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var decision services.DiscountDecision
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decision))
	assert.False(t, decision.Allowed)
	assert.Equal(t, "exceeds tier limit", decision.Reason)
	assert.Equal(t, float64(10), decision.MaxAllowedPct)
}

func TestDiscountHandler_ApplyDiscount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	txnID := uuid.New()
	service := &stubDiscountService{
		apply: func(_ context.Context, params services.ApplyDiscountParams) (*services.ApplyDiscountResult, error) {
			assert.Nil(t, params.EscalationID)
			return &services.ApplyDiscountResult{
				Approved:      true,
				Decision:      services.DiscountDecision{Allowed: true, Reason: "within discount authority"},
				TransactionID: &txnID,
			}, nil
		},
	}
	handler := NewDiscountHandler(service, nil, zap.NewNop())

	w, c := postJSON(t, ApplyDiscountRequest{
		ValidateDiscountRequest: ValidateDiscountRequest{
			EmployeeID:  uuid.New().String(),
			ProductID:   uuid.New().String(),
			DiscountPct: 5,
		},
	}, "/discounts/apply")
	handler.ApplyDiscount(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var result services.ApplyDiscountResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Approved)
	require.NotNil(t, result.TransactionID)
	assert.Equal(t, txnID, *result.TransactionID)
}

func TestDiscountHandler_ApplyDiscount_PassesEscalationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	escalationID := uuid.New()
	service := &stubDiscountService{
		apply: func(_ context.Context, params services.ApplyDiscountParams) (*services.ApplyDiscountResult, error) {
			require.NotNil(t, params.EscalationID)
			assert.Equal(t, escalationID, *params.EscalationID)
			return &services.ApplyDiscountResult{Approved: true, ManagerApproved: true}, nil
		},
	}
	handler := NewDiscountHandler(service, nil, zap.NewNop())

	escStr := escalationID.String()
	w, c := postJSON(t, ApplyDiscountRequest{
		ValidateDiscountRequest: ValidateDiscountRequest{
			EmployeeID:  uuid.New().String(),
			ProductID:   uuid.New().String(),
			DiscountPct: 15,
		},
		EscalationID: &escStr,
	}, "/discounts/apply")
	handler.ApplyDiscount(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDiscountHandler_ApplyDiscount_EscalationConflicts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		serviceErr    error
		expectedError string
	}{
		{
			name:          "not approved",
			serviceErr:    services.ErrEscalationNotApproved,
			expectedError: "Escalation is not approved",
		},
		{
			name:          "mismatched request",
			serviceErr:    services.ErrEscalationMismatch,
			expectedError: "Request does not match approved escalation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubDiscountService{
				apply: func(_ context.Context, _ services.ApplyDiscountParams) (*services.ApplyDiscountResult, error) {
					return nil, tt.serviceErr
				},
			}
			handler := NewDiscountHandler(service, nil, zap.NewNop())

			escStr := uuid.New().String()
			w, c := postJSON(t, ApplyDiscountRequest{
				ValidateDiscountRequest: ValidateDiscountRequest{
					EmployeeID:  uuid.New().String(),
					ProductID:   uuid.New().String(),
					DiscountPct: 15,
				},
				EscalationID: &escStr,
			}, "/discounts/apply")
			handler.ApplyDiscount(c)

			assert.Equal(t, http.StatusConflict, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Contains(t, response["error"], tt.expectedError)
		})
	}
}

func TestDiscountHandler_ApplyDiscount_InvalidEscalationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewDiscountHandler(&stubDiscountService{}, nil, zap.NewNop())

	escStr := "not-a-uuid"
	w, c := postJSON(t, ApplyDiscountRequest{
		ValidateDiscountRequest: ValidateDiscountRequest{
			EmployeeID:  uuid.New().String(),
			ProductID:   uuid.New().String(),
			DiscountPct: 15,
		},
		EscalationID: &escStr,
	}, "/discounts/apply")
	handler.ApplyDiscount(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "Invalid escalation ID format")
}
