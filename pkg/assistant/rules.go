package assistant

import "strings"

// Greeting opens every conversation.
const Greeting = "Hello! I'm your financial assistant. How can I help you today?"

const fallback = "I'm here to help with your financial questions. You can ask about your spending, budgeting tips, saving strategies, debt management, or investment advice."

// rule pairs keyword groups with a canned response. A rule matches when every
// group has at least one keyword contained in the lowercased input. Rules are
// tried in order and the first match wins.
type rule struct {
	groups   [][]string
	response string
}

var rules = []rule{
	{
		groups:   [][]string{{"hello", "hi"}},
		response: "Hello! How can I help with your finances today?",
	},
	{
		groups:   [][]string{{"spend"}, {"last month"}},
		response: "Based on your spending last month, your top three categories were: Food & Dining ($485), Rent ($1200), and Utilities ($420).",
	},
	{
		groups:   [][]string{{"budget"}, {"tips"}},
		response: "Here are some budgeting tips: 1) Follow the 50/30/20 rule - 50% on needs, 30% on wants, and 20% on savings. 2) Track all your expenses. 3) Set specific financial goals. 4) Review your budget regularly and adjust as needed.",
	},
	{
		groups:   [][]string{{"save", "saving"}},
		response: "To improve your savings, consider: 1) Automating your savings with direct deposit. 2) Finding areas to cut back on expenses. 3) Using the 24-hour rule before making non-essential purchases. 4) Setting clear financial goals with deadlines.",
	},
	{
		groups:   [][]string{{"invest", "investment"}},
		response: "For investments, consider: 1) Start with your employer's retirement plan. 2) Build a diversified portfolio. 3) Consider low-cost index funds for beginners. 4) Consult with a financial advisor for personalized advice.",
	},
	{
		groups:   [][]string{{"debt", "loan"}},
		response: "To manage debt effectively: 1) Prioritize high-interest debt. 2) Consider debt consolidation. 3) Always pay more than the minimum payment. 4) Create a debt repayment plan with specific goals and timeline.",
	},
	{
		groups:   [][]string{{"emergency fund", "emergency savings"}},
		response: "For emergency funds: 1) Aim to save 3-6 months of essential expenses. 2) Keep it in a high-yield savings account. 3) Only use it for true emergencies. 4) Replenish it as soon as possible after using it.",
	},
}

// Reply resolves the canned response for a user message.
func Reply(input string) string {
	lowered := strings.ToLower(input)
	for _, r := range rules {
		if r.matches(lowered) {
			return r.response
		}
	}
	return fallback
}

func (r rule) matches(lowered string) bool {
	for _, group := range r.groups {
		if !containsAny(lowered, group) {
			return false
		}
	}
	return true
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
