package auth

// DevAuthResponse — ответ на dev-авторизацию
type DevAuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// JWTClaims — claims для JWT token
type JWTClaims struct {
	Sub string `json:"sub"` // user_id
	Iss string `json:"iss"` // issuer
	Exp int64  `json:"exp"` // expiration time
	Iat int64  `json:"iat"` // issued at
}

// ErrorResponse — формат ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
