package domain

type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentCartHelp       Intent = "cart_help"
	IntentRecommendation Intent = "recommendations"
	IntentOrderTracking  Intent = "order_tracking"
	IntentShipping       Intent = "shipping"
	IntentReturns        Intent = "returns"
	IntentProductSearch  Intent = "product_search"
	IntentPricing        Intent = "pricing"
	IntentSupport        Intent = "support"
	IntentCheckout       Intent = "checkout"
	IntentGeneral        Intent = "general"
)

type User struct {
	ID          string   `json:"id,omitempty"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name,omitempty"`
	Email       string   `json:"email,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
}

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ChatContext is assembled by the caller from cart and auth state.
// A nil User is an anonymous visitor.
type ChatContext struct {
	User      *User
	CartItems []CartItem
	CartTotal float64
	HasItems  bool
}

// Action is a labeled shortcut that resubmits Text as the next message.
type Action struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type ChatResponse struct {
	Intent       Intent   `json:"intent"`
	Message      string   `json:"message"`
	Actions      []Action `json:"actions,omitempty"`
	QuickReplies []string `json:"quick_replies,omitempty"`
}
