package usecase

const (
	msgCodeValid   = "코드가 확인되었습니다."
	msgCodeInvalid = "코드가 유효하지 않습니다."
)

// AccessGuard compares caller codes against the single shared secret.
type AccessGuard struct {
	secret string
}

func NewAccessGuard(secret string) *AccessGuard {
	return &AccessGuard{secret: secret}
}

// Privileged is plain equality; an unset secret matches nothing.
func (g *AccessGuard) Privileged(code string) bool {
	return g.secret != "" && code == g.secret
}

type Verification struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func (g *AccessGuard) Verify(code string) Verification {
	if g.Privileged(code) {
		return Verification{Valid: true, Message: msgCodeValid}
	}
	return Verification{Valid: false, Message: msgCodeInvalid}
}
