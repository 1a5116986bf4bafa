package auth

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"

	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/permission"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/token"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/database"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

var (
	emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	upperRegex = regexp.MustCompile(`[A-Z]`)
	lowerRegex = regexp.MustCompile(`[a-z]`)
	digitRegex = regexp.MustCompile(`[0-9]`)
)

const invalidCredentialsMessage = "Invalid email or password"

// DomainPolicy maps roles to the email domains allowed to register them
type DomainPolicy struct {
	StudentDomains []string
	StaffDomains   []string
}

func (p DomainPolicy) Allows(role, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := email[at+1:]
	if role == userModel.RoleStudent {
		return slices.Contains(p.StudentDomains, domain)
	}
	return slices.Contains(p.StaffDomains, domain)
}

type Service struct {
	users      *user.Repository
	issuer     *token.Issuer
	domains    DomainPolicy
	bcryptCost int
	dummyHash  []byte
}

func NewService(users *user.Repository, issuer *token.Issuer, domains DomainPolicy, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = 12
	}
	// compared against on unknown emails so both failure paths cost one bcrypt
	dummy, err := bcrypt.GenerateFromPassword([]byte("campuslearn-dummy-password"), bcryptCost)
	if err != nil {
		panic(fmt.Errorf("auth: build dummy hash: %w", err))
	}
	return &Service{
		users:      users,
		issuer:     issuer,
		domains:    domains,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
	}
}

// NormalizeEmail trims and lower-cases
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*userModel.Summary, *response.BusinessError) {
	email := NormalizeEmail(req.Email)
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = userModel.RoleStudent
	}

	name, bizErr := user.ValidateName(req.Name)
	if bizErr != nil {
		return nil, bizErr
	}
	if bizErr := validateCredentials(email, req.Password); bizErr != nil {
		return nil, bizErr
	}
	if !permission.IsValidRole(role) {
		return nil, response.ErrValidation("role must be one of student, tutor, admin",
			map[string]string{"role": "invalid role"})
	}
	if !s.domains.Allows(role, email) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.DomainNotAllowed),
			response.WithErrorMessage("email domain is not allowed for role "+role),
		)
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, response.ErrInternal(err)
	}
	if exists {
		return nil, response.ErrConflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, response.ErrInternal(err)
	}

	newUser := userModel.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, &newUser); err != nil {
		// lost a race with a concurrent registration
		if database.IsDuplicateKey(err) {
			return nil, response.ErrConflict("email already registered")
		}
		return nil, response.ErrInternal(err)
	}

	summary := newUser.Summary()
	return &summary, nil
}

func validateCredentials(email, password string) *response.BusinessError {
	if !emailRegex.MatchString(email) {
		return response.ErrValidation("email format is invalid", map[string]string{"email": "invalid format"})
	}
	if len(password) < 8 || len(password) > 100 {
		return response.ErrValidation("password must be between 8 and 100 characters",
			map[string]string{"password": "length must be 8-100"})
	}
	if !upperRegex.MatchString(password) || !lowerRegex.MatchString(password) || !digitRegex.MatchString(password) {
		return response.ErrValidation("password must contain upper-case and lower-case letters and a digit",
			map[string]string{"password": "too weak"})
	}
	return nil
}

// Login never reveals whether the email exists
func (s *Service) Login(ctx context.Context, req LoginRequest) (*loginResult, *response.BusinessError) {
	invalid := response.NewBusinessError(
		response.WithErrorCode(response.InvalidCredentials),
		response.WithErrorMessage(invalidCredentialsMessage),
	)

	u, err := s.users.FindByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if !database.IsNotFound(err) {
			return nil, response.ErrInternal(err)
		}
		bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, invalid
	}

	tok, expiresAt, err := s.issuer.Issue(u.ID, u.Role)
	if err != nil {
		return nil, response.ErrInternal(err)
	}
	return &loginResult{
		LoginResponse: LoginResponse{User: u.Summary(), ExpiresAt: expiresAt},
		Token:         tok,
	}, nil
}

func (s *Service) Me(ctx context.Context, userID uint) (*MeResponse, *response.BusinessError) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, response.ErrUnauthorized("account no longer exists")
		}
		return nil, response.ErrInternal(err)
	}
	return &MeResponse{User: u.Summary(), LandingPath: permission.LandingPath(u.Role)}, nil
}
