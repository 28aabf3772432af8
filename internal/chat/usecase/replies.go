package usecase

import (
	"fmt"
	"strings"

	"digaxy-assistant/internal/estimate"
	"digaxy-assistant/internal/model"
)

// Reply texts for every state. Anything dynamic is a formatter; anything
// static is a constant. Markdown renders on Telegram and degrades gracefully
// on plain-text hosts.

const (
	replyGreetingRetry = "👋 Welcome to Digaxy! Please say 'hello' or 'hi' to get started!"

	replyItemsRetry = "Please provide more details about what you're moving. (At least 4-5 words)"

	replyPickupRetry = "Please provide a valid pickup location with city and address."

	replyDropoffRetry = "Please provide a valid dropoff location with city and address."

	replyVehicleRetry = "Please choose one: **Pickup**, **Van**, **Minibox**, or **Bigbox**"

	replyEstimateGeneric = "Got your details! Let me calculate...\n\n💰 **Estimated Cost: $150-300** (based on typical moves)\n\nWould you like to proceed with booking?"

	replyRestart = "No problem! Let's start fresh. 👋 What can I help you with today?"

	replyBookingProcessing = "Your booking is being processed. You should receive a confirmation shortly!"

	replyUnknown = "I'm not sure what you mean. Could you rephrase that?"

	followUpConfirm = "Say 'yes' to book or 'no' to cancel"
	followUpGeneric = "Say 'yes' to continue or 'no' to cancel"
)

// serviceMenu renders the numbered list of the five service options.
func serviceMenu() string {
	var b strings.Builder
	for i, opt := range serviceOptions {
		fmt.Fprintf(&b, "%d. **%s** - %s\n", i+1, opt.name, opt.note)
	}
	return strings.TrimRight(b.String(), "\n")
}

// serviceMenuShort renders the retry variant without descriptions.
func serviceMenuShort() string {
	var b strings.Builder
	for i, opt := range serviceOptions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt.name)
	}
	return strings.TrimRight(b.String(), "\n")
}

// vehicleMenu renders the vehicle options with their base fares, straight
// from the rate table so menu and pricing cannot drift apart.
func vehicleMenu() string {
	var b strings.Builder
	for _, v := range estimate.Vehicles() {
		_, rate := estimate.ResolveRate(v)
		fmt.Fprintf(&b, "• **%s** - $%.2f base (%s)\n", capitalize(v), rate.BaseFare, vehicleNotes[v])
	}
	return strings.TrimRight(b.String(), "\n")
}

func replyWelcome() string {
	return "👋 Hi there! I'm Digaxy Assistant. Let me help you with your moving or delivery needs.\n\n" +
		"What service do you need?\n\n" + serviceMenu() + "\n\nJust tell me your choice!"
}

func replyServiceRetry() string {
	return "I didn't understand. Please choose one:\n" + serviceMenuShort()
}

func replyServiceSelected(name string) string {
	return fmt.Sprintf("✓ Selected: **%s**\n\nGreat! Now tell me **what items are you moving or what do you need delivered?**\n\n"+
		"For example: furniture, boxes, appliances, office equipment, electronics, etc.", name)
}

func replyItemsSelected(items string) string {
	return fmt.Sprintf("✓ Items: **%s**\n\nPerfect! Now, **what's your pickup location?** (Please provide city name and specific address)", items)
}

func replyPickupSelected(pickup string) string {
	return fmt.Sprintf("✓ Pickup: **%s**\n\nGot it! Now, **what's your dropoff/destination location?** (Please provide city name and specific address)", pickup)
}

func replyDropoffSelected(dropoff string) string {
	return fmt.Sprintf("✓ Dropoff: **%s**\n\nExcellent! Now **choose a vehicle** for your move:\n\n%s\n\nWhich one works for you?",
		dropoff, vehicleMenu())
}

func formatEstimate(f model.Fields, baseFare float64, res estimate.Result) string {
	return fmt.Sprintf(`✅ **Your Estimate is Ready!**

📍 **Route:** %s
➜ %s

📏 **Distance:** ~%.1f km
🚐 **Vehicle:** %s
📦 **Items:** %s

**Cost Breakdown:**
• Base fare: $%.2f
• Distance cost: $%.2f
• Labor time: ~%d min ($%.2f)

💰 **TOTAL: $%.2f** (including taxes)

*Note: This is a non-binding estimate. Final price may vary.*

Would you like to **proceed with booking?** (Say 'yes' or 'no')`,
		f.PickupLocation, f.DropoffLocation,
		res.DistanceKm, f.VehicleType, f.ItemDescription,
		baseFare, res.DistanceCost, res.LaborMinutes, res.LaborCost, res.TotalCost)
}

func formatBookingConfirmed(f model.Fields, bookingURL string) string {
	cost := 0.0
	if f.EstimatedCost != nil {
		cost = *f.EstimatedCost
	}
	return fmt.Sprintf(`✅ **Booking Confirmed!**

Thank you for choosing Digaxy! Your booking details are ready:

📋 **Summary:**
• Service: %s
• Items: %s
• From: %s
• To: %s
• Vehicle: %s
• Estimated Cost: $%.2f

🔗 **Complete your booking here:**
%s

We'll be in touch shortly to confirm your pickup time. Have a great day! 🚚✨`,
		f.ServiceType, f.ItemDescription, f.PickupLocation, f.DropoffLocation, f.VehicleType,
		cost, bookingURL)
}

func replyConfirmRetry(estimatedCost *float64) string {
	if estimatedCost == nil {
		return "Would you like to book this service? (Say 'yes' to book or 'no' to cancel)"
	}
	return fmt.Sprintf("Would you like to book this service for $%.2f? (Say 'yes' to book or 'no' to cancel)", *estimatedCost)
}
