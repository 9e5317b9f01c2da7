package reply

import (
	"fmt"
	"slices"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
)

// InitialQuickReplies are offered before the user has sent anything.
var InitialQuickReplies = []string{
	"Show me recommendations",
	"Help with my cart",
	"Track my order",
	"Return policy",
}

// Welcome opens a new conversation.
const Welcome = "Hi! I'm your AI shopping assistant. I can help you with product recommendations, order information, and answer any questions you have. How can I assist you today?"

// Unavailable is shown when a reply could not be produced in time.
const Unavailable = "I'm sorry, I'm having trouble connecting right now. Please try again in a moment."

var AnonymousGreetings = []string{
	"Hello! I'm here to help you find the perfect products. What are you looking for?",
	"Hi! I can help you with product recommendations, orders, and more. How can I assist?",
	"Welcome to AI Store! I'm your personal shopping assistant. What can I help you with?",
}

var FallbackMessages = []string{
	"I'd be happy to help! Can you tell me more about what you're looking for?",
	"I'm here to assist with your shopping needs. Could you be more specific about how I can help?",
	"Let me help you with that! What specific information do you need?",
	"I can help with products, orders, shipping, and more. What would you like to know?",
}

func shippingInfo() domain.ChatResponse {
	return domain.ChatResponse{
		Message:      "We offer free shipping on orders over $50! Standard shipping takes 2-3 business days, and express shipping is available for next-day delivery. All orders are trackable once shipped.",
		QuickReplies: []string{"Shipping costs", "Express delivery", "International shipping", "Track package"},
	}
}

func returnsInfo() domain.ChatResponse {
	return domain.ChatResponse{
		Message:      "We have a hassle-free 30-day return policy! Items can be returned in original condition for a full refund. Electronics have a 15-day return window. Would you like help with a return?",
		Actions:      []domain.Action{{Label: "Start Return", Text: "I want to return an item"}},
		QuickReplies: []string{"Return process", "Refund timeline", "Exchange item", "Return shipping"},
	}
}

func pricingInfo() domain.ChatResponse {
	return domain.ChatResponse{
		Message:      "We offer competitive prices with regular sales and discounts! Sign up for our newsletter to get exclusive deals. We also have a price-match policy for identical products.",
		QuickReplies: []string{"Current sales", "Price match", "Newsletter signup", "Bulk discounts"},
	}
}

func supportInfo() domain.ChatResponse {
	return domain.ChatResponse{
		Message:      "I'm here to help! I can assist with orders, products, shipping, returns, and account questions. What specific issue can I help you resolve?",
		QuickReplies: []string{"Order issues", "Product questions", "Account help", "Technical support"},
	}
}

// PersonalizedWelcome greets a signed-in user and counts the lines in their cart.
func PersonalizedWelcome(firstName string, cartLines int) string {
	noun := "items"
	if cartLines == 1 {
		noun = "item"
	}
	return fmt.Sprintf(
		"Welcome back, %s! I can see you have %d %s in your cart. Would you like to complete your purchase or need help finding something else?",
		firstName, cartLines, noun,
	)
}

// Opening returns the messages shown when the chat opens: Welcome for everyone,
// followed by a personalized greeting when a user is signed in.
func Opening(chat domain.ChatContext) []domain.ChatResponse {
	opening := []domain.ChatResponse{{
		Intent:       domain.IntentGreeting,
		Message:      Welcome,
		QuickReplies: slices.Clone(InitialQuickReplies),
	}}
	if chat.User != nil {
		opening = append(opening, domain.ChatResponse{
			Intent:  domain.IntentGreeting,
			Message: PersonalizedWelcome(chat.User.FirstName, len(chat.CartItems)),
		})
	}
	return opening
}
