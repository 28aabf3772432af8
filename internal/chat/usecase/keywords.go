package usecase

import (
	"strings"

	"digaxy-assistant/internal/estimate"
)

// Intent matching is plain substring containment over ordered keyword lists.
// Order matters: the first match wins, which resolves utterances containing
// several keywords deterministically. Keep these as tables, not scattered
// conditionals.

var greetingKeywords = []string{"hi", "hello", "hey", "start", "help", "begin"}

var confirmKeywords = []string{"yes", "confirm", "book", "proceed", "ok", "yeah", "sure", "let's go"}

var cancelKeywords = []string{"no", "cancel", "back", "restart", "different"}

type serviceOption struct {
	keyword string
	name    string
	note    string
}

var serviceOptions = []serviceOption{
	{keyword: "home", name: "Home Move", note: "Moving from one home to another"},
	{keyword: "apartment", name: "Apartment Move", note: "Apartment to apartment"},
	{keyword: "office", name: "Office Move", note: "Commercial/office moves"},
	{keyword: "furniture", name: "Furniture Delivery", note: "Deliver furniture items"},
	{keyword: "donation", name: "Donation Pickup", note: "Schedule a donation pickup"},
}

var vehicleNotes = map[string]string{
	"pickup":  "light items, small boxes",
	"van":     "furniture, moderate loads",
	"minibox": "apartment moves",
	"bigbox":  "full house/office",
}

func containsAny(utterance string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(utterance, kw) {
			return true
		}
	}
	return false
}

// matchService returns the display name of the first service whose keyword
// appears in the utterance.
func matchService(utterance string) (string, bool) {
	for _, opt := range serviceOptions {
		if strings.Contains(utterance, opt.keyword) {
			return opt.name, true
		}
	}
	return "", false
}

// matchVehicle returns the capitalized name of the first vehicle category
// appearing in the utterance.
func matchVehicle(utterance string) (string, bool) {
	for _, v := range estimate.Vehicles() {
		if strings.Contains(utterance, v) {
			return capitalize(v), true
		}
	}
	return "", false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
