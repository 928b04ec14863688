package contracts

import (
	"testing"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFromPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CreateBookingRequest/1.0.0", keyFromPath("schemas/requests/create-booking/v1.json"))
	assert.Equal(t, "LoginRequest/2.0.0", keyFromPath("schemas/requests/login/v2.json"))
	assert.Equal(t, "", keyFromPath("schemas/requests/login.json"))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	require.NoError(t, Load())
	compiled, _ := loadSchemas()
	assert.Contains(t, compiled, LoginRequestV1)
	assert.Contains(t, compiled, RegisterRequestV1)
	assert.Contains(t, compiled, CreateBookingRequestV1)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		body    string
		wantErr bool
	}{
		{"login ok", LoginRequestV1, `{"email":"john@example.com","password":""}`, false},
		{"login missing password", LoginRequestV1, `{"email":"john@example.com"}`, true},
		{"login extra field", LoginRequestV1, `{"email":"a@b.c","password":"x","admin":true}`, true},
		{"register ok", RegisterRequestV1, `{"name":"Ann","email":"ann@example.com","password":"pw","role":"landlord"}`, false},
		{"register bad role", RegisterRequestV1, `{"name":"Ann","email":"ann@example.com","password":"pw","role":"admin"}`, true},
		{"register bad email", RegisterRequestV1, `{"name":"Ann","email":"not-an-email","password":"pw","role":"tenant"}`, true},
		{"booking ok", CreateBookingRequestV1, `{"propertyId":"1","startDate":"2024-01-01","endDate":"2024-01-05"}`, false},
		{"booking wrong type", CreateBookingRequestV1, `{"propertyId":1,"startDate":"","endDate":""}`, true},
		{"not json", LoginRequestV1, `{`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.key, []byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_UnknownSchema(t *testing.T) {
	t.Parallel()

	err := Validate("Nope/1.0.0", []byte(`{}`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}
