package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "admin", want: RoleAdmin},
		{in: "player", want: RolePlayer},
		{in: "Admin", wantErr: true},
		{in: "", wantErr: true},
		{in: "root", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("ParseRole(%q) error = %v, want ErrValidation", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseRole(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestRole_Valid(t *testing.T) {
	if Role(0).Valid() || Role(3).Valid() {
		t.Error("unexpected valid role")
	}
	if !RoleAdmin.Valid() || !RolePlayer.Valid() {
		t.Error("expected valid roles")
	}
}

func TestIdentity_Authenticated(t *testing.T) {
	if Anonymous.Authenticated() {
		t.Error("anonymous identity must not be authenticated")
	}
	if (Identity{ID: uuid.New()}).Authenticated() {
		t.Error("identity without role must not be authenticated")
	}
	if !(Identity{ID: uuid.New(), Role: RolePlayer}).Authenticated() {
		t.Error("player identity must be authenticated")
	}
}
