// Package intent maps free-text chat messages to a fixed set of intents by
// keyword membership.
package intent

import (
	"strings"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
)

// Rule pairs an intent with the keywords that trigger it.
type Rule struct {
	Intent   domain.Intent
	Keywords []string
}

// DefaultRules is the storefront's intent table. Rules are checked in order and
// the first hit wins, so a message mentioning both "hello" and "order" is a greeting.
var DefaultRules = []Rule{
	{domain.IntentGreeting, []string{"hello", "hi", "hey", "good morning", "good afternoon"}},
	{domain.IntentCartHelp, []string{"cart", "basket", "items", "checkout", "purchase"}},
	{domain.IntentRecommendation, []string{"recommend", "suggest", "similar", "like this", "show me"}},
	{domain.IntentOrderTracking, []string{"order", "track", "shipping", "delivery", "status"}},
	{domain.IntentShipping, []string{"ship", "deliver", "freight", "send"}},
	{domain.IntentReturns, []string{"return", "refund", "exchange", "money back"}},
	{domain.IntentProductSearch, []string{"find", "search", "look for", "where is"}},
	{domain.IntentPricing, []string{"price", "cost", "expensive", "cheap", "discount", "sale"}},
	{domain.IntentSupport, []string{"help", "support", "problem", "issue"}},
	{domain.IntentCheckout, []string{"buy", "purchase", "complete order", "pay"}},
}

type Classifier struct {
	rules []Rule
}

// NewClassifier returns a classifier over rules, or DefaultRules when rules is empty.
// Keywords are expected in lowercase.
func NewClassifier(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Classifier{rules: rules}
}

// Classify returns the intent of message. Messages matching no rule are general.
func (c *Classifier) Classify(message string) domain.Intent {
	m := strings.ToLower(message)
	for _, rule := range c.rules {
		if containsAny(m, rule.Keywords) {
			return rule.Intent
		}
	}
	return domain.IntentGeneral
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
