package model

// TokenClaims is the identity payload signed into access and refresh tokens.
type TokenClaims struct {
	UserID    int64  `json:"userId"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
	Role      Role   `json:"role"`
}
