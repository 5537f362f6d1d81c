package models

import (
	"encoding/json"
	"testing"
)

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{"owner role", RoleOwner, true},
		{"employee role", RoleEmployee, true},
		{"driver role", RoleDriver, true},
		{"invalid role", "admin", false},
		{"empty role", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidRole(tt.role)
			if result != tt.expected {
				t.Errorf("IsValidRole(%s) = %v, want %v", tt.role, result, tt.expected)
			}
		})
	}
}

func TestUser_PasswordHashNotSerialized(t *testing.T) {
	user := User{
		Username:     "driver1",
		PasswordHash: "bcrypt-hash",
		Role:         RoleDriver,
	}
	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := out["passwordHash"]; ok {
		t.Error("passwordHash must not appear in JSON output")
	}
}
