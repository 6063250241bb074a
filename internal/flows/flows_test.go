package flows

import (
	"context"
	"errors"
	"testing"
)

var (
	errLoginFailed   = errors.New("login failed")
	errIntegrity     = errors.New("integrity")
	errRegisterFail  = errors.New("register failed")
	errRefreshFailed = errors.New("refresh failed")
)

func TestRunLoginValidatesPayload(t *testing.T) {
	tests := []struct {
		name    string
		ok      bool
		payload *LoginPayload
		wantErr error
	}{
		{"backend failure", false, nil, errLoginFailed},
		{"nil payload", true, nil, errIntegrity},
		{"missing token", true, &LoginPayload{UserID: "7"}, errIntegrity},
		{"missing user id", true, &LoginPayload{Token: "tok"}, errIntegrity},
		{"complete payload", true, &LoginPayload{Token: "tok", UserID: "7"}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			persisted := false
			payload, err := RunLogin(context.Background(), "e", "p", LoginDeps{
				CallLogin: func(context.Context, string, string) (bool, *LoginPayload, string) {
					return tc.ok, tc.payload, "nope"
				},
				Persist: func(*LoginPayload) { persisted = true },
				Errors:  LoginErrors{LoginFailed: errLoginFailed, SessionIntegrity: errIntegrity},
			})

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				if persisted {
					t.Fatal("invalid payload was persisted")
				}
				return
			}
			if err != nil || payload == nil {
				t.Fatalf("RunLogin = %v, %v", payload, err)
			}
			if !persisted {
				t.Fatal("valid payload not persisted")
			}
		})
	}
}

func TestRunRegisterDelegatesToLogin(t *testing.T) {
	loginCalled := false
	err := RunRegister(context.Background(), RegisterDeps{
		CallRegister: func(context.Context) (bool, string) { return true, "" },
		Login: func(context.Context) error {
			loginCalled = true
			return nil
		},
		Errors: RegisterErrors{RegisterFailed: errRegisterFail},
	})
	if err != nil || !loginCalled {
		t.Fatalf("RunRegister = %v, login called = %v", err, loginCalled)
	}

	err = RunRegister(context.Background(), RegisterDeps{
		CallRegister: func(context.Context) (bool, string) { return false, "Email taken" },
		Login: func(context.Context) error {
			t.Fatal("login ran after a failed registration")
			return nil
		},
		Errors: RegisterErrors{RegisterFailed: errRegisterFail},
	})
	if !errors.Is(err, errRegisterFail) {
		t.Fatalf("err = %v", err)
	}
}

func TestRunRefreshSkipsWithoutToken(t *testing.T) {
	skipped := false
	err := RunRefresh(context.Background(), RefreshDeps{
		HasToken: func() bool { return false },
		CallMe: func(context.Context) (bool, []byte, string) {
			t.Fatal("tokenless refresh reached CallMe")
			return false, nil, ""
		},
		Replace: func([]byte) error { return nil },
		Skipped: func() { skipped = true },
		Errors:  RefreshErrors{RefreshFailed: errRefreshFailed},
	})
	if err != nil || !skipped {
		t.Fatalf("RunRefresh = %v, skipped = %v", err, skipped)
	}
}

func TestRunRefreshFailureSkipsReplace(t *testing.T) {
	err := RunRefresh(context.Background(), RefreshDeps{
		HasToken: func() bool { return true },
		CallMe:   func(context.Context) (bool, []byte, string) { return false, nil, "boom" },
		Replace: func([]byte) error {
			t.Fatal("replace ran after a failed fetch")
			return nil
		},
		Errors: RefreshErrors{RefreshFailed: errRefreshFailed},
	})
	if !errors.Is(err, errRefreshFailed) {
		t.Fatalf("err = %v", err)
	}
}

func TestRunLogoutOrdering(t *testing.T) {
	var order []string
	RunLogout(context.Background(), LogoutDeps{
		NotifyBackend: func(context.Context) { order = append(order, "notify") },
		ClearStorage:  func() { order = append(order, "clear") },
		ResetState:    func() { order = append(order, "reset") },
		Navigate:      func() { order = append(order, "navigate") },
	})

	want := []string{"notify", "clear", "reset", "navigate"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
