package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSignup() SignupRequest {
	return SignupRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
		Gender:   "F",
	}
}

func TestSignupRequestValidate(t *testing.T) {
	assert.NoError(t, validSignup().Validate())

	cases := map[string]func(*SignupRequest){
		"short name":    func(r *SignupRequest) { r.FullName = "Jo" },
		"long name":     func(r *SignupRequest) { r.FullName = strings.Repeat("a", 61) },
		"missing email": func(r *SignupRequest) { r.Email = "" },
		"bad email":     func(r *SignupRequest) { r.Email = "not-an-email" },
		"short pass":    func(r *SignupRequest) { r.Password = "12345" },
		"long pass":     func(r *SignupRequest) { r.Password = strings.Repeat("x", 31) },
		"bad gender":    func(r *SignupRequest) { r.Gender = "X" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validSignup()
			mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, LoginRequest{Email: "jane@example.com", Password: "password123"}.Validate())
	assert.Error(t, LoginRequest{Email: "jane@example.com", Password: ""}.Validate())
	assert.Error(t, LoginRequest{Email: "nope", Password: "password123"}.Validate())
}

func TestEmailRequestValidate(t *testing.T) {
	assert.NoError(t, EmailRequest{Email: "jane@example.com"}.Validate())
	assert.Error(t, EmailRequest{Email: ""}.Validate())
}

func TestContentRequestValidate(t *testing.T) {
	assert.NoError(t, ContentRequest{Content: "hello"}.Validate())
	assert.Error(t, ContentRequest{}.Validate())
}
