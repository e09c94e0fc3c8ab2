package entity

// SeedAccount is one roster entry provisioned on first run.
type SeedAccount struct {
	Email    string
	ClientID string
}

const (
	SeedHealth = 98
	SeedStatus = AccountStatusActive
)

// SeedFleet is the fixed sender roster the dashboard starts from. IDs,
// health and counters are assigned at cold start by the account
// repository, never here.
var SeedFleet = []SeedAccount{
	{Email: "outreach@udaanx.com", ClientID: "1000.UDX7K2JQHMZL4T8B6WNC3VY9R5XS0A1F"},
	{Email: "growth@udaanx.com", ClientID: "1000.PB39MZXW5KQJ2H8RT4LC6N7VD0YSE1GA"},
	{Email: "partnerships@udaanx.com", ClientID: "1000.XR52TNHQ8BJW4KML0C3ZV9Y7DS6PA1EF"},
	{Email: "hello@udaanxlabs.com", ClientID: "1000.KM84WQZJ2XHT6BNR5L0CV3Y9D7SP1AGE"},
	{Email: "connect@udaanxlabs.com", ClientID: "1000.TJ61ZKXQ9WHM3BNR84LCV2Y5D0SP1AGE"},
	{Email: "team@udaanxhq.com", ClientID: "1000.QW27JKZX4THM8BNR6L0CV5Y3D9SP1AGE"},
}
