package entities

// ApprovalBundle is the set of documents the approval flow writes when a
// quote transitions into the signed state. Every document in the bundle is
// persisted in a single DynamoDB transaction: either all of them become
// visible or none do.
//
// NewClient is nil when the quote already referenced a registered client;
// ClientID then carries that reference. When NewClient is set, ClientID
// equals NewClient.ID and the same id is written back onto the quote.
type ApprovalBundle struct {
	QuoteID   string
	ClientID  string
	NewClient *Client
	Project   Project
	Order     Order
	Invoices  []Invoice
}
