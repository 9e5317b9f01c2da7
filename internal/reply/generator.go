// Package reply builds canned chatbot responses for classified intents.
package reply

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
)

// Rand picks a template index. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// LockedRand makes a Rand safe for concurrent use.
type LockedRand struct {
	mu  sync.Mutex
	src Rand
}

func NewLockedRand(seed int64) *LockedRand {
	return &LockedRand{src: rand.New(rand.NewSource(seed))}
}

func (r *LockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

var searchTriggers = regexp.MustCompile(`(?i)find|search|look for|where is`)

type Generator struct {
	rng Rand
}

func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds the response for intent. message is the user's original text,
// used by product search to echo back what was asked for.
func (g *Generator) Generate(intent domain.Intent, message string, chat domain.ChatContext) domain.ChatResponse {
	var resp domain.ChatResponse

	switch intent {
	case domain.IntentGreeting:
		resp = g.greeting(chat.User)
	case domain.IntentCartHelp:
		resp = cartHelp(chat)
	case domain.IntentRecommendation:
		resp = recommendations(chat.User)
	case domain.IntentOrderTracking:
		resp = orderTracking(chat.User)
	case domain.IntentShipping:
		resp = shippingInfo()
	case domain.IntentReturns:
		resp = returnsInfo()
	case domain.IntentProductSearch:
		resp = productSearch(message)
	case domain.IntentPricing:
		resp = pricingInfo()
	case domain.IntentSupport:
		resp = supportInfo()
	case domain.IntentCheckout:
		resp = checkout(chat.HasItems)
	default:
		intent = domain.IntentGeneral
		resp = g.fallback()
	}

	resp.Intent = intent
	return resp
}

func (g *Generator) pick(templates []string) string {
	return templates[g.rng.Intn(len(templates))]
}

func (g *Generator) greeting(user *domain.User) domain.ChatResponse {
	var templates []string
	if user != nil {
		templates = []string{
			fmt.Sprintf("Hello %s! How can I help you with your shopping today?", user.FirstName),
			"Hi there! I see you're back. What can I assist you with?",
			"Welcome back! Ready to find some great products?",
		}
	} else {
		templates = AnonymousGreetings
	}

	return domain.ChatResponse{
		Message:      g.pick(templates),
		QuickReplies: []string{"Show recommendations", "Browse products", "Help with cart", "Track order"},
	}
}

func cartHelp(chat domain.ChatContext) domain.ChatResponse {
	if !chat.HasItems {
		return domain.ChatResponse{
			Message: "Your cart is currently empty. Would you like me to recommend some products or help you find something specific?",
			Actions: []domain.Action{
				{Label: "Get Recommendations", Text: "Show me recommendations"},
				{Label: "Browse Products", Text: "Show me products"},
			},
			QuickReplies: []string{"Electronics", "Food & Beverages", "Furniture", "Popular items"},
		}
	}

	count := len(chat.CartItems)
	noun := "items"
	if count == 1 {
		noun = "item"
	}

	return domain.ChatResponse{
		Message: fmt.Sprintf(
			"You have %d %s in your cart totaling $%.2f. Would you like to proceed to checkout, modify your cart, or need help with anything else?",
			count, noun, chat.CartTotal,
		),
		Actions: []domain.Action{
			{Label: "Proceed to Checkout", Text: "Take me to checkout"},
			{Label: "View Cart", Text: "Show me my cart"},
		},
		QuickReplies: []string{"Checkout now", "Add more items", "Remove items", "Apply coupon"},
	}
}

func recommendations(user *domain.User) domain.ChatResponse {
	msg := "I'd love to recommend some products for you! What categories interest you most, or would you like to see our popular items?"
	if user != nil && len(user.Preferences) > 0 {
		msg = fmt.Sprintf(
			"Based on your interests in %s, I can show you some great products! What type of recommendations would you like?",
			strings.Join(user.Preferences, ", "),
		)
	}

	return domain.ChatResponse{
		Message: msg,
		Actions: []domain.Action{
			{Label: "Popular Items", Text: "Show popular products"},
			{Label: "New Arrivals", Text: "Show new products"},
		},
		QuickReplies: []string{"Electronics", "Home & Garden", "Fashion", "Books", "Sports"},
	}
}

func orderTracking(user *domain.User) domain.ChatResponse {
	if user == nil {
		return domain.ChatResponse{
			Message: "To track your orders, please sign in to your account first. Once logged in, you can view all your order history and tracking information.",
			Actions: []domain.Action{{Label: "Sign In", Text: "Take me to login"}},
		}
	}

	return domain.ChatResponse{
		Message:      "I can help you track your orders! You can find detailed tracking information in your profile under 'Order History'. Would you like me to guide you there or help with something specific?",
		Actions:      []domain.Action{{Label: "View Orders", Text: "Show my orders"}},
		QuickReplies: []string{"Recent orders", "Delivery status", "Return an item"},
	}
}

func productSearch(message string) domain.ChatResponse {
	terms := strings.TrimSpace(searchTriggers.ReplaceAllString(message, ""))
	if terms == "" {
		return domain.ChatResponse{
			Message:      "What specific product are you looking for? I can search our entire catalog to find exactly what you need.",
			QuickReplies: []string{"Electronics", "Home goods", "Fashion", "Books"},
		}
	}

	return domain.ChatResponse{
		Message: fmt.Sprintf("I can help you find products related to \"%s\". Let me search our catalog for you!", terms),
		Actions: []domain.Action{
			{Label: "Search Products", Text: "Search for " + terms},
		},
		QuickReplies: []string{"Electronics", "Home goods", "Fashion", "Books"},
	}
}

func checkout(hasItems bool) domain.ChatResponse {
	if !hasItems {
		return domain.ChatResponse{
			Message: "You don't have any items in your cart yet. Would you like me to help you find some products first?",
			Actions: []domain.Action{{Label: "Browse Products", Text: "Show me products"}},
		}
	}

	return domain.ChatResponse{
		Message:      "Great! I can help you complete your purchase. Make sure to review your items and apply any discount codes before checkout.",
		Actions:      []domain.Action{{Label: "Go to Checkout", Text: "Take me to checkout"}},
		QuickReplies: []string{"Apply coupon", "Check shipping", "Payment options", "Review cart"},
	}
}

func (g *Generator) fallback() domain.ChatResponse {
	return domain.ChatResponse{
		Message:      g.pick(FallbackMessages),
		QuickReplies: []string{"Product recommendations", "Order help", "Shipping info", "Return policy"},
	}
}
