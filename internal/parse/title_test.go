package parse

import "testing"

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "follow up prefix stripped", text: "Follow up with shipping by Friday", want: "Shipping by Friday"},
		{name: "remind me prefix stripped", text: "remind me to renew the certificate", want: "Renew the certificate"},
		{name: "schedule prefix stripped", text: "schedule dentist appointment", want: "Dentist appointment"},
		{name: "add task colon prefix", text: "add task: buy milk", want: "Buy milk"},
		{name: "bare task colon prefix", text: "task: rotate the API keys", want: "Rotate the API keys"},
		{name: "longer create phrase wins", text: "create a task for onboarding docs", want: "Onboarding docs"},
		{name: "no prefix passes through capitalized", text: "buy milk", want: "Buy milk"},
		{name: "already capitalized unchanged", text: "Buy milk", want: "Buy milk"},
		{name: "surrounding whitespace trimmed", text: "  Follow up with  the vendor  ", want: "The vendor"},
		{name: "prefix with nothing after it", text: "schedule", want: "Schedule"},
		{name: "empty input", text: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExtractTitle(tt.text); got != tt.want {
				t.Errorf("ExtractTitle(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
