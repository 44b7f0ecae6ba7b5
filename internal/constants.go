package internal

const (
	COOKIE_ACCESS_TOKEN_NAME = "entraide_access_token"
	COOKIE_REDIRECT_NAME     = "entraide_redirect_to"
)
