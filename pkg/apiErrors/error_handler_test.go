package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "token inválido vira 401", code: ErrInvalidToken, wantStatus: http.StatusUnauthorized},
		{name: "requisição inválida vira 400", code: ErrInvalidRequest, wantStatus: http.StatusBadRequest},
		{name: "usuário existente vira 409", code: ErrUserAlreadyExists, wantStatus: http.StatusConflict},
		{name: "serviço externo vira 502", code: ErrExternalService, wantStatus: http.StatusBadGateway},
		{name: "código desconhecido vira 500", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.code, body["code"])
			assert.Equal(t, "mensagem", body["error"])
			assert.NotContains(t, body, "details")
		})
	}
}

func TestWriteFatal_SempreRetorna500(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteFatal(rec, ErrMissingCredentials, "Usuário não autenticado", map[string]string{"campo": "x"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, ErrMissingCredentials, body.Code)
	assert.Equal(t, "Usuário não autenticado", body.Message)
	assert.NotNil(t, body.Details)
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("falhou"), ErrDatabaseOperation)
	assert.Equal(t, ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)

	apiErr = FromError(nil, ErrDatabaseOperation)
	assert.Equal(t, ErrInternalServer, apiErr.Code)
}
