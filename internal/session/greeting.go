package session

import "time"

const welcomePrompt = "Welcome to our restaurant. Do you prefer vegetarian, non-vegetarian, or a mix of both?"

// Greeting returns the time-of-day salutation for t
func Greeting(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 12:
		return "Good morning!"
	case hour < 18:
		return "Good afternoon!"
	default:
		return "Good evening!"
	}
}
