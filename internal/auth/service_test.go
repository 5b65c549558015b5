package auth

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexushr/hr-management/internal/employee"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock credential source for testing
type mockCredentialSource struct {
	credentials map[string]*Credentials
	sourceError error
}

func newMockCredentialSource() *mockCredentialSource {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	return &mockCredentialSource{
		credentials: map[string]*Credentials{
			"admin@nexushr.com": {
				UserID:       "u-1",
				Email:        "admin@nexushr.com",
				PasswordHash: string(hashedPassword),
				AccessLevel:  "ADMIN",
				Status:       employee.StatusActive,
			},
			"novo@nexushr.com": {
				UserID:             "u-2",
				Email:              "novo@nexushr.com",
				PasswordHash:       string(hashedPassword),
				AccessLevel:        "EMPLOYEE",
				Status:             employee.StatusActive,
				MustChangePassword: true,
			},
			"ex@nexushr.com": {
				UserID:       "u-3",
				Email:        "ex@nexushr.com",
				PasswordHash: string(hashedPassword),
				AccessLevel:  "EMPLOYEE",
				Status:       employee.StatusTerminated,
			},
		},
	}
}

func (m *mockCredentialSource) GetCredentials(email string) (*Credentials, error) {
	if m.sourceError != nil {
		return nil, m.sourceError
	}
	creds, exists := m.credentials[email]
	if !exists {
		return nil, errors.New("not found")
	}
	return creds, nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service *Service
		source  *mockCredentialSource
	)

	ginkgo.BeforeEach(func() {
		source = newMockCredentialSource()
		tokenGen := NewJWTTokenGenerator("access-secret", "refresh-secret")
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = NewService(source, tokenGen, bcrypt.MinCost, logger)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("with valid credentials", func() {
			ginkgo.It("should return a token pair", func() {
				tokens, err := service.Authenticate(LoginDTO{Email: "admin@nexushr.com", Password: "correct_password"})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(tokens.AccessToken).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.RefreshToken).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.MustChangePassword).To(gomega.BeFalse())
			})

			ginkgo.It("should carry the identity in the access token", func() {
				tokens, err := service.Authenticate(LoginDTO{Email: "admin@nexushr.com", Password: "correct_password"})
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				claims, err := service.ValidateAccessToken(tokens.AccessToken)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal("u-1"))
				gomega.Expect(claims.Email).To(gomega.Equal("admin@nexushr.com"))
				gomega.Expect(claims.AccessLevel).To(gomega.Equal("ADMIN"))
			})

			ginkgo.It("should flag a pending forced password change", func() {
				tokens, err := service.Authenticate(LoginDTO{Email: "novo@nexushr.com", Password: "correct_password"})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(tokens.MustChangePassword).To(gomega.BeTrue())
			})
		})

		ginkgo.Context("with invalid credentials", func() {
			ginkgo.It("should reject a wrong password", func() {
				_, err := service.Authenticate(LoginDTO{Email: "admin@nexushr.com", Password: "wrong"})

				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
			})

			ginkgo.It("should reject an unknown email with the same error", func() {
				_, err := service.Authenticate(LoginDTO{Email: "ghost@nexushr.com", Password: "correct_password"})

				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
			})
		})

		ginkgo.Context("with a terminated account", func() {
			ginkgo.It("should reject the login as inactive", func() {
				_, err := service.Authenticate(LoginDTO{Email: "ex@nexushr.com", Password: "correct_password"})

				gomega.Expect(err).To(gomega.Equal(ErrUserInactive))
			})

			ginkgo.It("should not reveal the account state on a wrong password", func() {
				_, err := service.Authenticate(LoginDTO{Email: "ex@nexushr.com", Password: "wrong"})

				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
			})
		})

		ginkgo.Context("with malformed input", func() {
			ginkgo.It("should reject an empty email", func() {
				_, err := service.Authenticate(LoginDTO{Password: "correct_password"})

				gomega.Expect(err).To(gomega.HaveOccurred())
			})

			ginkgo.It("should reject an empty password", func() {
				_, err := service.Authenticate(LoginDTO{Email: "admin@nexushr.com"})

				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Describe("RefreshTokens", func() {
		ginkgo.It("should issue a new pair for a valid refresh token", func() {
			tokens, err := service.Authenticate(LoginDTO{Email: "admin@nexushr.com", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			refreshed, err := service.RefreshTokens(tokens.RefreshToken)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(refreshed.AccessToken).ToNot(gomega.BeEmpty())
			gomega.Expect(refreshed.RefreshToken).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("should reject garbage tokens", func() {
			_, err := service.RefreshTokens("not-a-token")

			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("HashPassword", func() {
		ginkgo.It("should produce a verifiable bcrypt hash", func() {
			hash, err := service.HashPassword("segredo123")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("segredo123"))).To(gomega.Succeed())
		})
	})
})
