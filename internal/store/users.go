package store

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hedef100/academia-core/internal/models"
	appErrors "github.com/hedef100/academia-core/pkg/errors"
)

// RegisterUserRequest describes a registration payload.
type RegisterUserRequest struct {
	Name           string          `json:"name" validate:"required"`
	Username       string          `json:"username" validate:"required"`
	Password       string          `json:"password" validate:"required,min=4"`
	Role           models.Role     `json:"role" validate:"required"`
	ExamType       models.ExamType `json:"examType"`
	Branch         string          `json:"branch"`
	TargetNet      float64         `json:"targetNet"`
	TargetGPA      float64         `json:"targetGPA"`
	IsCoachingOpen bool            `json:"isCoachingOpen"`

	// AccessCode is required for admin registration only.
	AccessCode string `json:"accessCode"`
}

// RegisterUser appends a new account. Students receive the default
// subject catalogue of their exam type; admins must present the
// configured access code.
func (s *Store) RegisterUser(req RegisterUserRequest) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.registerUser(req)
	s.finish("register_user", err)
	return user, err
}

func (s *Store) registerUser(req RegisterUserRequest) (*models.User, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	user := models.User{
		ID:        s.newID(),
		Name:      req.Name,
		Username:  req.Username,
		Password:  req.Password,
		Role:      req.Role,
		ExamType:  req.ExamType,
		TargetNet: req.TargetNet,
		TargetGPA: req.TargetGPA,
		Subjects:  []models.SubjectDefinition{},
	}

	switch req.Role {
	case models.RoleStudent:
		if !req.ExamType.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown exam type %q", req.ExamType))
		}
		user.Subjects = models.DefaultSubjects(req.ExamType)
	case models.RoleTeacher:
		user.Branch = req.Branch
		user.IsCoachingOpen = req.IsCoachingOpen
	case models.RoleAdmin:
		if err := s.checkAdminAccessCode(req.AccessCode); err != nil {
			return nil, err
		}
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown role %q", req.Role))
	}

	for i := range s.state.Users {
		if s.state.Users[i].Username == req.Username {
			return nil, appErrors.Clone(appErrors.ErrDuplicateUsername, "")
		}
	}

	s.state.Users = append(s.state.Users, user)
	registered := user.Clone()
	return &registered, nil
}

func (s *Store) checkAdminAccessCode(code string) error {
	if s.adminAccessCodeHash == "" {
		return appErrors.Clone(appErrors.ErrForbidden, "admin registration is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminAccessCodeHash), []byte(code)); err != nil {
		return appErrors.Clone(appErrors.ErrForbidden, "invalid admin access code")
	}
	return nil
}

// Authenticate returns the account matching the credentials by exact
// equality. It changes no state; the caller decides what to do with
// the user.
func (s *Store) Authenticate(username, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.authenticate(username, password)
	s.record("authenticate", err)
	return user, err
}

func (s *Store) authenticate(username, password string) (*models.User, error) {
	for i := range s.state.Users {
		if s.state.Users[i].Username == username && s.state.Users[i].Password == password {
			user := s.state.Users[i].Clone()
			return &user, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
}

// Login authenticates and opens the transient session. Sessions are
// never persisted.
func (s *Store) Login(username, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.authenticate(username, password)
	if err == nil {
		session := user.Clone()
		s.state.CurrentUser = &session
	}
	s.record("login", err)
	return user, err
}

// Logout clears the session.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentUser = nil
	s.record("logout", nil)
}

// CurrentUser returns the session user, or nil when nobody is logged
// in.
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.CurrentUser == nil {
		return nil
	}
	user := s.state.CurrentUser.Clone()
	return &user
}

// UpdateUserProfile replaces the stored record wholesale. The username
// uniqueness invariant still holds across the edit.
func (s *Store) UpdateUserProfile(user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated, err := s.updateUserProfile(user)
	s.finish("update_user_profile", err)
	return updated, err
}

func (s *Store) updateUserProfile(user models.User) (*models.User, error) {
	if user.ID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "user id required")
	}
	idx := s.userIndex(user.ID)
	if idx < 0 {
		return nil, appErrors.Clone(appErrors.ErrUserNotFound, "")
	}
	for i := range s.state.Users {
		if i != idx && s.state.Users[i].Username == user.Username {
			return nil, appErrors.Clone(appErrors.ErrDuplicateUsername, "")
		}
	}
	s.state.Users[idx] = user.Clone()
	s.refreshSession()
	updated := s.state.Users[idx].Clone()
	return &updated, nil
}
