package core

import (
	"fmt"
	"strings"
)

const (
	msgVegSet          = "Vegetarian preference set."
	msgNonVegSet       = "Non-vegetarian preference set."
	msgMixSet          = "Mixed preference set."
	msgNeedPreference  = "Please set your dietary preference (vegetarian, non-vegetarian, or mix) before proceeding."
	msgNoMatchingItems = "No items match your preferences."
	msgUnknownDish     = "I'm sorry, I couldn't recognize the dish. Please try again."
	msgUnknownRemoval  = "I'm sorry, I couldn't recognize the dish to remove. Please try again."
	msgEmptyOrder      = "You haven't ordered anything yet."
	msgFarewellEmpty   = "Thank you! Your food will arrive shortly. Have a great day!"
	msgNotUnderstood   = "I'm sorry, I don't understand. Could you please repeat?"
)

func menuResponse(names []string) string {
	if len(names) == 0 {
		return msgNoMatchingItems
	}
	return "Our menu includes: " + strings.Join(names, ", ")
}

func addedResponse(item string) string {
	return fmt.Sprintf("%s has been added to your order. Anything else you'd like to add?", item)
}

func removedResponse(item string) string {
	return fmt.Sprintf("%s has been removed from your order. Anything else you'd like to modify?", item)
}

func orderResponse(items []string) string {
	if len(items) == 0 {
		return msgEmptyOrder
	}
	return fmt.Sprintf("Your current order includes: %s.", strings.Join(items, ", "))
}

func farewellResponse(items []string) string {
	if len(items) == 0 {
		return msgFarewellEmpty
	}
	return fmt.Sprintf("Thank you for your order! You have ordered: %s. Your food will arrive shortly. Have a great day!",
		strings.Join(items, ", "))
}
