package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// 190 é "token expirado"; 460, 463 e 467 são subcódigos de sessão inválida
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsRateLimited verifica se a chamada foi barrada por limite de uso da aplicação
func (e *ErrorResponse) IsRateLimited() bool {
	return e.Error.Code == 4 || e.Error.Code == 17 || e.Error.Code == 613
}

// GraphError é a falha devolvida pela Graph API com status diferente de 200
type GraphError struct {
	StatusCode int
	Details    *ErrorResponse
	Body       string
}

func (e *GraphError) Error() string {
	if e.Details != nil && e.Details.Error.Message != "" {
		return fmt.Sprintf("graph api status %d: %s (code=%d, type=%s, fbtrace_id=%s)",
			e.StatusCode, e.Details.Error.Message, e.Details.Error.Code, e.Details.Error.Type, e.Details.Error.FBTraceID)
	}
	return fmt.Sprintf("graph api status %d: %s", e.StatusCode, e.Body)
}
