package estatekit

import (
	"encoding/json"
	"testing"
)

func TestUserIDAcceptsStringOrNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want UserID
	}{
		{"string id", `{"id":"42"}`, "42"},
		{"numeric id", `{"id":42}`, "42"},
		{"large numeric id", `{"id":9007199254740993}`, "9007199254740993"},
		{"null id", `{"id":null}`, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out struct {
				ID UserID `json:"id"`
			}
			if err := json.Unmarshal([]byte(tc.raw), &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if out.ID != tc.want {
				t.Fatalf("id = %q, want %q", out.ID, tc.want)
			}
		})
	}

	var out struct {
		ID UserID `json:"id"`
	}
	if err := json.Unmarshal([]byte(`{"id":true}`), &out); err == nil {
		t.Fatal("boolean id accepted")
	}
}

func TestUserIDMarshalsAsString(t *testing.T) {
	raw, err := json.Marshal(UserProfile{ID: "7", Email: "o@x.io"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var probe map[string]any
	if err := json.Unmarshal(raw, &probe); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if got, ok := probe["id"].(string); !ok || got != "7" {
		t.Fatalf("id = %v", probe["id"])
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleOwner, RoleAgent, RoleCaretaker, RoleTenant, RoleStaff, RoleAdmin, Role("OWNER")} {
		if !role.Valid() {
			t.Errorf("Valid(%q) = false", role)
		}
	}
	for _, role := range []Role{"", "superuser", "own er"} {
		if role.Valid() {
			t.Errorf("Valid(%q) = true", role)
		}
	}
}

func TestFuncNavigator(t *testing.T) {
	var got string
	FuncNavigator(func(path string) { got = path }).Push("/login")
	if got != "/login" {
		t.Fatalf("pushed = %q", got)
	}

	var nilNav FuncNavigator
	nilNav.Push("/login") // must not panic
	NoOpNavigator{}.Push("/login")
}
