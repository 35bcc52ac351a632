package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mitronet/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already exists")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInternal               = errors.New("internal error")
)

// ValidationError carries the field messages of a rejected signup or
// login, joined the way the API reports them.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

type SignupInput struct {
	FullName string `validate:"required,min=5,fullname"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,containsany=0123456789"`
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Signup(ctx context.Context, in SignupInput) (user.User, error)
	Login(ctx context.Context, in LoginInput) (user.User, error)
}

type Service struct {
	users      user.Repository
	validate   *validator.Validate
	adminEmail string
}

var fullNameRe = regexp.MustCompile(`^[A-Za-z\s]+$`)

func NewService(users user.Repository, adminEmail string) *Service {
	v := validator.New()
	_ = v.RegisterValidation("fullname", func(fl validator.FieldLevel) bool {
		return fullNameRe.MatchString(fl.Field().String())
	})
	return &Service{
		users:      users,
		validate:   v,
		adminEmail: normalizeEmail(adminEmail),
	}
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (user.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = normalizeEmail(in.Email)

	if err := s.validate.Struct(in); err != nil {
		return user.User{}, signupValidationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 12)
	if err != nil {
		return user.User{}, ErrInternal
	}

	role := user.RoleUser
	if s.adminEmail != "" && in.Email == s.adminEmail {
		role = user.RoleAdmin
	}

	u := user.User{
		ID:           uuid.New(),
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	return sanitize(u), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, &ValidationError{Messages: []string{"Email and Password are required"}}
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			// Same failure as a wrong password; never reveal which.
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitize(u), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitize(u user.User) user.User {
	u.PasswordHash = ""
	return u
}

func signupValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Messages: []string{"Invalid input"}}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, signupFieldMessage(fe))
	}
	return &ValidationError{Messages: msgs}
}

func signupFieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "FullName":
		switch fe.Tag() {
		case "required":
			return "Name is required"
		case "min":
			return "Name must be at least 5 characters long"
		default:
			return "Name must contain only letters and spaces"
		}
	case "Email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Please provide a valid email address"
	case "Password":
		switch fe.Tag() {
		case "required":
			return "Password is required"
		case "min":
			return "Password must be at least 6 characters long"
		default:
			return "Password must contain at least one number"
		}
	}
	return "Invalid input"
}
