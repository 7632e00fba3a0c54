package user

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/trezcool/kitivo/core"
)

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrNotApproved        = errors.New("matriculation number is not on the approved list")
	ErrAlreadyRegistered  = errors.New("a user with this matriculation number already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountSuspended   = errors.New("account suspended")
	ErrAccountBanned      = errors.New("account banned")
)

type (
	Repository interface {
		CreateUser(user User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByID(id int) (User, error)
		// GetUserByIdentifier does a case-insensitive match on one of
		// User.Username, User.Email or User.MatricNumber.
		GetUserByIdentifier(identifier string) (User, error)
		// GetUserByMatric does a case-insensitive match on
		// User.MatricNumber only.
		GetUserByMatric(matric string) (User, error)
		UpdateUser(user User) (User, error)
		DeleteUsersByID(ids ...int) error

		QueryRoster() ([]string, error)
		AddToRoster(matric string) error
		RemoveFromRoster(matric string) error
	}

	Service struct {
		repo    Repository
		conf    *core.Config
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, conf *core.Config, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, conf: conf, mailSvc: mailSvc}
}

// SignUp registers a new account. The matriculation number must be on the
// approved roster and not already taken, checked in that order.
func (svc *Service) SignUp(nu NewUser) (User, error) {
	if err := nu.Validate(); err != nil {
		return User{}, err
	}

	approved, err := svc.onRoster(nu.MatricNumber)
	if err != nil {
		return User{}, err
	}
	if !approved {
		return User{}, core.NewValidationError(ErrNotApproved,
			core.FieldError{Field: "matric_number", Error: ErrNotApproved.Error()})
	}
	if _, err = svc.repo.GetUserByMatric(nu.MatricNumber); err == nil {
		return User{}, core.NewValidationError(ErrAlreadyRegistered,
			core.FieldError{Field: "matric_number", Error: ErrAlreadyRegistered.Error()})
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	role := RoleStudent
	if nu.Email == core.CleanString(svc.conf.AdminEmail, true /* lower */) {
		role = RoleAdmin
	}

	now := time.Now().UTC()
	usr := User{
		Username:     nu.Username,
		Email:        nu.Email,
		MatricNumber: nu.MatricNumber,
		Role:         role,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	usr.SetName(nu.FirstName, nu.OtherName, nu.Surname)
	if err = usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}

	usr, err = svc.repo.CreateUser(usr)
	if err != nil {
		return User{}, err
	}
	svc.sendWelcomeEmail(usr)
	return usr, nil
}

// Authenticate signs a user in. The identifier match is case-insensitive;
// the password check is exact. Account status is only checked after the
// credentials match so a blocked user gets a specific error.
func (svc *Service) Authenticate(creds Credentials) (User, error) {
	if err := creds.Validate(); err != nil {
		return User{}, err
	}

	usr, err := svc.repo.GetUserByIdentifier(creds.Identifier)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if err = usr.CheckPassword(creds.Password); err != nil {
		return User{}, ErrInvalidCredentials
	}

	switch usr.Status {
	case StatusSuspended:
		return User{}, ErrAccountSuspended
	case StatusBanned:
		return User{}, ErrAccountBanned
	}

	usr.LastLogin = time.Now().UTC()
	return svc.repo.UpdateUser(usr)
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByID(id int) (User, error) {
	return svc.repo.GetUserByID(id)
}

func (svc *Service) UpdateProfile(id int, up UpdateProfile) (User, error) {
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return User{}, err
	}

	first, other, surname := usr.FirstName, usr.OtherName, usr.Surname
	if core.CleanString(up.FirstName) != "" {
		first = up.FirstName
	}
	if core.CleanString(up.OtherName) != "" {
		other = up.OtherName
	}
	if core.CleanString(up.Surname) != "" {
		surname = up.Surname
	}
	usr.SetName(first, other, surname)
	if up.Picture != "" {
		usr.Picture = up.Picture
	}
	usr.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateUser(usr)
}

// SetRole changes a user's role; admin only at the call site.
func (svc *Service) SetRole(id int, role string) (User, error) {
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return User{}, err
	}
	usr.Role = role
	usr.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateUser(usr)
}

// SetStatus suspends, bans or reactivates an account.
func (svc *Service) SetStatus(id int, status string) (User, error) {
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return User{}, err
	}
	usr.Status = status
	usr.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateUser(usr)
}

func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteUsersByID(ids...)
}

// Roster curation

func (svc *Service) Roster() ([]string, error) {
	return svc.repo.QueryRoster()
}

func (svc *Service) ApproveMatric(matric string) error {
	matric = core.CleanString(matric)
	if !matricRegexOK(matric) {
		return core.NewValidationError(nil, core.FieldError{Field: "matric_number", Error: "a valid matriculation number is required"})
	}
	return svc.repo.AddToRoster(matric)
}

func (svc *Service) RevokeMatric(matric string) error {
	return svc.repo.RemoveFromRoster(core.CleanString(matric))
}

func (svc *Service) onRoster(matric string) (bool, error) {
	roster, err := svc.repo.QueryRoster()
	if err != nil {
		return false, err
	}
	for _, m := range roster {
		if strings.EqualFold(m, matric) {
			return true, nil
		}
	}
	return false, nil
}

func (svc *Service) sendWelcomeEmail(usr User) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.FullName, Address: usr.Email}},
		Subject: "Welcome to " + svc.conf.AppName,
		BodyStr: "Hi " + usr.FirstName + ",\n\nYour departmental portal account is ready. Sign in with your username, email or matriculation number.",
	})
}

func matricRegexOK(matric string) bool {
	if len(matric) != 10 {
		return false
	}
	for _, r := range matric {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
