package domain

// AdvisorClient links an advisor's internal id to one of their clients' internal id.
type AdvisorClient struct {
	ID        int64 `json:"id"`
	AdvisorID int64 `json:"advisorID"` // users.user_id of the advisor
	ClientID  int64 `json:"clientID"`  // users.user_id of the client
}
