package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:    "valid email",
			email:   "test@example.com",
			wantErr: false,
		},
		{
			name:    "valid email with subdomain",
			email:   "user@mail.example.com",
			wantErr: false,
		},
		{
			name:    "valid email with plus",
			email:   "user+tag@example.com",
			wantErr: false,
		},
		{
			name:    "missing @",
			email:   "testexample.com",
			wantErr: true,
		},
		{
			name:    "missing domain",
			email:   "test@",
			wantErr: true,
		},
		{
			name:    "missing local part",
			email:   "@example.com",
			wantErr: true,
		},
		{
			name:    "empty string",
			email:   "",
			wantErr: true,
		},
		{
			name:    "spaces in email",
			email:   "test @example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{
			name:     "valid username",
			username: "guitarhero",
			wantErr:  false,
		},
		{
			name:     "valid with digits and underscore",
			username: "player_42",
			wantErr:  false,
		},
		{
			name:     "minimum length",
			username: "abc",
			wantErr:  false,
		},
		{
			name:     "maximum length",
			username: "abcdefghij0123456789",
			wantErr:  false,
		},
		{
			name:     "too short",
			username: "ab",
			wantErr:  true,
		},
		{
			name:     "too long",
			username: "abcdefghij0123456789x",
			wantErr:  true,
		},
		{
			name:     "contains space",
			username: "guitar hero",
			wantErr:  true,
		},
		{
			name:     "contains hyphen",
			username: "guitar-hero",
			wantErr:  true,
		},
		{
			name:     "empty string",
			username: "",
			wantErr:  true,
		},
		{
			name:     "reserved name",
			username: "admin",
			wantErr:  true,
		},
		{
			name:     "reserved name mixed case",
			username: "ChordCrack",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "strong password accepted",
			password: "Tr1cky!Passphrase",
			wantErr:  false,
		},
		{
			name:     "fair password accepted",
			password: "guitars99",
			wantErr:  false,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
		},
		{
			name:     "too short",
			password: "Ab1!xyz",
			wantErr:  true,
		},
		{
			name:     "common password rejected",
			password: "password",
			wantErr:  true,
		},
		{
			name:     "common password with digit rejected",
			password: "password1",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     Strength
	}{
		{
			name:     "empty is weak",
			password: "",
			want:     StrengthWeak,
		},
		{
			name:     "common password is weak",
			password: "12345678",
			want:     StrengthWeak,
		},
		{
			name:     "common password any case is weak",
			password: "PASSWORD",
			want:     StrengthWeak,
		},
		{
			name:     "short single class is weak",
			password: "guitar",
			want:     StrengthWeak,
		},
		{
			name:     "eight chars one class is fair",
			password: "guitarzz",
			want:     StrengthFair,
		},
		{
			name:     "eight chars two classes is fair",
			password: "Guitarzz",
			want:     StrengthFair,
		},
		{
			name:     "twelve chars three classes is good",
			password: "Guitarstrum9",
			want:     StrengthGood,
		},
		{
			name:     "long mixed password is strong",
			password: "My0ldStrat&Amp!!",
			want:     StrengthStrong,
		},
		{
			name:     "repeated run is penalized",
			password: "guitaaar",
			want:     StrengthWeak,
		},
		{
			name:     "sequential run is penalized",
			password: "abcdwxyz",
			want:     StrengthWeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PasswordStrength(tt.password)
			if got != tt.want {
				t.Errorf("PasswordStrength(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestHasRepeatedRun(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  bool
	}{
		{"triple run", "aaab", 3, true},
		{"pairs only", "aabbcc", 3, false},
		{"empty", "", 3, false},
		{"run at end", "xyzzz", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasRepeatedRun(tt.input, tt.n); got != tt.want {
				t.Errorf("hasRepeatedRun(%q, %d) = %v, want %v", tt.input, tt.n, got, tt.want)
			}
		})
	}
}

func TestHasSequentialRun(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  bool
	}{
		{"ascending letters", "abcd", 4, true},
		{"descending digits", "4321", 4, true},
		{"mixed case ascending", "ABcd", 4, true},
		{"too short run", "abc9", 4, false},
		{"no sequence", "axbycz", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasSequentialRun(tt.input, tt.n); got != tt.want {
				t.Errorf("hasSequentialRun(%q, %d) = %v, want %v", tt.input, tt.n, got, tt.want)
			}
		})
	}
}
