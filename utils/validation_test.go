package utils

import "testing"

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "quiz_kid7", false},
		{"minimum length", "abc", false},
		{"too short", "ab", true},
		{"empty", "", true},
		{"spaces", "quiz kid", true},
		{"punctuation", "kid!", true},
		{"hyphen", "quiz-kid", true},
		{"underscores and digits", "kid_123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "kid@example.com", false},
		{"subdomain", "kid@mail.school.edu", false},
		{"empty", "", true},
		{"missing at", "kid.example.com", true},
		{"missing domain", "kid@", true},
		{"missing tld", "kid@example", true},
		{"contains space", "k id@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("secret"); err != nil {
		t.Errorf("ValidatePassword(6 chars) = %v, want nil", err)
	}
	if err := ValidatePassword("12345"); err == nil {
		t.Error("ValidatePassword(5 chars) = nil, want error")
	}
	if err := ValidatePassword(""); err == nil {
		t.Error("ValidatePassword(\"\") = nil, want error")
	}
}

func TestValidateAge(t *testing.T) {
	tests := []struct {
		name    string
		age     string
		want    int
		wantErr bool
	}{
		{"lower bound", "6", 6, false},
		{"upper bound", "12", 12, false},
		{"middle", "9", 9, false},
		{"too young", "5", 0, true},
		{"too old", "13", 0, true},
		{"empty", "", 0, true},
		{"not a number", "nine", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAge(tt.age)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAge(%q) error = %v, wantErr %v", tt.age, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateAge(%q) = %d, want %d", tt.age, got, tt.want)
			}
		})
	}
}
