package user_test

import (
	"errors"
	"testing"

	"github.com/trezcool/kitivo/core"
	"github.com/trezcool/kitivo/core/user"
	"github.com/trezcool/kitivo/services/email"
	"github.com/trezcool/kitivo/storage/kvstore"
	"github.com/trezcool/kitivo/storage/kvstore/inmem"
)

func testConfig() *core.Config {
	return &core.Config{
		AppName:          "Kitivo",
		TestMode:         true,
		AdminEmail:       "hod@test.cd",
		DefaultFromEmail: "noreply@test.cd",
	}
}

func setup(t *testing.T) *user.Service {
	t.Helper()
	store, err := kvstore.Open(inmemkv.New())
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	conf := testConfig()
	return user.NewService(store.UserRepository(), conf, emailsvc.NewConsoleService(conf))
}

func newSignUp(matric string) user.NewUser {
	return user.NewUser{
		FirstName:       "Ada",
		Surname:         "Obi",
		Username:        "ada_" + matric[6:],
		Email:           "ada" + matric[6:] + "@test.cd",
		MatricNumber:    matric,
		Password:        "s3cret!",
		PasswordConfirm: "s3cret!",
	}
}

func TestService_SignUp(t *testing.T) {
	svc := setup(t)

	usr, err := svc.SignUp(newSignUp("2024013417"))
	if err != nil {
		t.Fatalf("SignUp() err = %v; want nil", err)
	}
	if usr.ID == 0 {
		t.Error("SignUp() did not assign an ID")
	}
	if usr.Role != user.RoleStudent {
		t.Errorf("SignUp() role = %v; want %v", usr.Role, user.RoleStudent)
	}
	if usr.Status != user.StatusActive {
		t.Errorf("SignUp() status = %v; want %v", usr.Status, user.StatusActive)
	}
	if usr.FullName != "Ada Obi" {
		t.Errorf("SignUp() full name = %v; want Ada Obi", usr.FullName)
	}
}

func TestService_SignUp_duplicateMatric(t *testing.T) {
	svc := setup(t)

	if _, err := svc.SignUp(newSignUp("2024013417")); err != nil {
		t.Fatalf("SignUp() err = %v; want nil", err)
	}
	dup := newSignUp("2024013417")
	dup.Username = "someoneelse"
	dup.Email = "else@test.cd"
	if _, err := svc.SignUp(dup); !errors.Is(err, user.ErrAlreadyRegistered) {
		t.Errorf("SignUp() err = %v; want ErrAlreadyRegistered", err)
	}
}

func TestService_SignUp_matricMatchingUsernameIsNotDuplicate(t *testing.T) {
	svc := setup(t)

	// a user whose username happens to spell another approved matric
	first := newSignUp("2024013417")
	first.Username = "2024013418"
	if _, err := svc.SignUp(first); err != nil {
		t.Fatalf("SignUp() err = %v; want nil", err)
	}

	// the owner of that matric can still register
	if _, err := svc.SignUp(newSignUp("2024013418")); err != nil {
		t.Errorf("SignUp() err = %v; want nil", err)
	}
}

func TestService_SignUp_notOnRoster(t *testing.T) {
	svc := setup(t)

	if _, err := svc.SignUp(newSignUp("0000000000")); !errors.Is(err, user.ErrNotApproved) {
		t.Errorf("SignUp() err = %v; want ErrNotApproved", err)
	}
}

func TestService_SignUp_adminEmailGetsAdminRole(t *testing.T) {
	svc := setup(t)

	nu := newSignUp("2024013418")
	nu.Email = "hod@test.cd"
	usr, err := svc.SignUp(nu)
	if err != nil {
		t.Fatalf("SignUp() err = %v; want nil", err)
	}
	if usr.Role != user.RoleAdmin {
		t.Errorf("SignUp() role = %v; want %v", usr.Role, user.RoleAdmin)
	}
}

func TestService_Authenticate(t *testing.T) {
	svc := setup(t)
	if _, err := svc.SignUp(newSignUp("2024013417")); err != nil {
		t.Fatalf("SignUp() err = %v; want nil", err)
	}

	tests := []struct {
		name    string
		creds   user.Credentials
		wantErr error
	}{
		{name: "by username", creds: user.Credentials{Identifier: "ada_3417", Password: "s3cret!"}},
		{name: "by email", creds: user.Credentials{Identifier: "ada3417@test.cd", Password: "s3cret!"}},
		{name: "by matric", creds: user.Credentials{Identifier: "2024013417", Password: "s3cret!"}},
		{name: "case-insensitive identifier", creds: user.Credentials{Identifier: "ADA_3417", Password: "s3cret!"}},
		{name: "wrong password", creds: user.Credentials{Identifier: "ada_3417", Password: "S3CRET!"}, wantErr: user.ErrInvalidCredentials},
		{name: "unknown identifier", creds: user.Credentials{Identifier: "nobody", Password: "s3cret!"}, wantErr: user.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := svc.Authenticate(tt.creds)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Authenticate() err = %v; want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Authenticate() err = %v; want nil", err)
			}
			if usr.LastLogin.IsZero() {
				t.Error("Authenticate() did not stamp last login")
			}
		})
	}
}

func TestService_Authenticate_blockedAccounts(t *testing.T) {
	svc := setup(t)
	usr, err := svc.SignUp(newSignUp("2024013417"))
	if err != nil {
		t.Fatalf("SignUp() err = %v; want nil", err)
	}
	creds := user.Credentials{Identifier: "ada_3417", Password: "s3cret!"}

	if _, err = svc.SetStatus(usr.ID, user.StatusSuspended); err != nil {
		t.Fatalf("SetStatus() err = %v; want nil", err)
	}
	if _, err = svc.Authenticate(creds); !errors.Is(err, user.ErrAccountSuspended) {
		t.Errorf("Authenticate() err = %v; want ErrAccountSuspended", err)
	}

	if _, err = svc.SetStatus(usr.ID, user.StatusBanned); err != nil {
		t.Fatalf("SetStatus() err = %v; want nil", err)
	}
	if _, err = svc.Authenticate(creds); !errors.Is(err, user.ErrAccountBanned) {
		t.Errorf("Authenticate() err = %v; want ErrAccountBanned", err)
	}

	// a wrong password still wins over the status check
	bad := user.Credentials{Identifier: "ada_3417", Password: "nope"}
	if _, err = svc.Authenticate(bad); !errors.Is(err, user.ErrInvalidCredentials) {
		t.Errorf("Authenticate() err = %v; want ErrInvalidCredentials", err)
	}
}

func TestService_rosterManagement(t *testing.T) {
	svc := setup(t)

	matric := "2024999999"
	if _, err := svc.SignUp(newSignUp(matric)); !errors.Is(err, user.ErrNotApproved) {
		t.Fatalf("SignUp() err = %v; want ErrNotApproved", err)
	}

	if err := svc.ApproveMatric(matric); err != nil {
		t.Fatalf("ApproveMatric() err = %v; want nil", err)
	}
	if _, err := svc.SignUp(newSignUp(matric)); err != nil {
		t.Errorf("SignUp() after approval err = %v; want nil", err)
	}

	if err := svc.RevokeMatric(matric); err != nil {
		t.Fatalf("RevokeMatric() err = %v; want nil", err)
	}
	roster, err := svc.Roster()
	if err != nil {
		t.Fatalf("Roster() err = %v; want nil", err)
	}
	for _, m := range roster {
		if m == matric {
			t.Errorf("Roster() still contains revoked matric %v", matric)
		}
	}
}
