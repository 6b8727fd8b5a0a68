package dialogue

// Routes of the decision chain, in evaluation order. RouteError marks a turn that
// failed before or outside the chain.
const (
	RouteUpdate       = "update"
	RouteGreeting     = "greeting"
	RouteCapabilities = "capabilities"
	RouteRecall       = "recall"
	RouteOffTopic     = "off_topic"
	RouteAnswer       = "answer"
	RouteError        = "error"
)

type ReplyInput struct {
	UserID string
	Query  string
}

type ReplyOutput struct {
	Reply    string
	Route    string
	Degraded bool // true when the reply is an apology or the generic error text
}
