package domain

import "testing"

func completeUser() *User {
	return &User{
		ID:               1,
		Email:            "ceo@example.com",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		CompanyName:      "Analytical Engines",
		Level:            "C_LEVEL",
		Industry:         "Technology",
		LeadershipStyles: []string{"VISIONARY"},
	}
}

func TestUserOnboardingComplete(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(u *User)
		expected bool
	}{
		{
			name:     "all fields filled",
			mutate:   func(u *User) {},
			expected: true,
		},
		{
			name:     "missing first name",
			mutate:   func(u *User) { u.FirstName = "" },
			expected: false,
		},
		{
			name:     "missing last name",
			mutate:   func(u *User) { u.LastName = "" },
			expected: false,
		},
		{
			name:     "missing company name",
			mutate:   func(u *User) { u.CompanyName = "" },
			expected: false,
		},
		{
			name:     "missing level",
			mutate:   func(u *User) { u.Level = "" },
			expected: false,
		},
		{
			name:     "missing industry",
			mutate:   func(u *User) { u.Industry = "" },
			expected: false,
		},
		{
			name:     "no leadership styles",
			mutate:   func(u *User) { u.LeadershipStyles = nil },
			expected: false,
		},
		{
			name:     "empty leadership styles slice",
			mutate:   func(u *User) { u.LeadershipStyles = []string{} },
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := completeUser()
			tt.mutate(u)
			if got := u.OnboardingComplete(); got != tt.expected {
				t.Errorf("expected OnboardingComplete() = %v, got %v", tt.expected, got)
			}
		})
	}
}
