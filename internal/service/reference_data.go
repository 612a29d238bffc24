package service

import "transaction-monitoring-api/internal/core/domain"

const (
	unknownRegion = "Unknown Region"
	unknownCity   = "Unknown City"
)

// ReferenceData holds the value tables the generator draws from. Region and
// city tables are keyed by their parent; a parent with no entry falls back
// to the unknown placeholder.
type ReferenceData struct {
	Countries        []string
	Regions          map[string][]string
	Cities           map[string][]string
	Merchants        []string
	TransactionTypes []string
	Currencies       []string
	ErrorMessages    []string
}

// DefaultReferenceData returns the built-in tables. City coverage is sparse.
func DefaultReferenceData() ReferenceData {
	return ReferenceData{
		Countries: []string{
			"USA", "Canada", "UK", "Germany", "France",
			"Japan", "Australia", "India", "Brazil", "China",
		},
		Regions: map[string][]string{
			"USA":       {"East Coast", "West Coast", "Midwest", "South", "Northwest"},
			"Canada":    {"Ontario", "Quebec", "British Columbia", "Alberta", "Manitoba"},
			"UK":        {"England", "Scotland", "Wales", "Northern Ireland"},
			"Germany":   {"Bavaria", "Berlin", "Hamburg", "Saxony", "Hesse"},
			"France":    {"Île-de-France", "Provence", "Normandy", "Brittany", "Alsace"},
			"Japan":     {"Kanto", "Kansai", "Chubu", "Kyushu", "Tohoku"},
			"Australia": {"New South Wales", "Victoria", "Queensland", "Western Australia", "South Australia"},
			"India":     {"Maharashtra", "Delhi", "Karnataka", "Tamil Nadu", "Gujarat"},
			"Brazil":    {"São Paulo", "Rio de Janeiro", "Minas Gerais", "Bahia", "Paraná"},
			"China":     {"Guangdong", "Beijing", "Shanghai", "Sichuan", "Zhejiang"},
		},
		Cities: map[string][]string{
			"East Coast":    {"New York", "Boston", "Philadelphia", "Miami", "Washington DC"},
			"West Coast":    {"Los Angeles", "San Francisco", "Seattle", "Portland", "San Diego"},
			"England":       {"London", "Manchester", "Birmingham", "Liverpool", "Leeds"},
			"Bavaria":       {"Munich", "Nuremberg", "Augsburg", "Regensburg", "Würzburg"},
			"Île-de-France": {"Paris", "Versailles", "Saint-Denis", "Boulogne-Billancourt", "Argenteuil"},
		},
		Merchants: []string{
			"Amazon", "Walmart", "Target", "Best Buy", "Apple Store",
			"Starbucks", "McDonald's", "Uber", "Netflix", "Spotify",
		},
		TransactionTypes: []string{
			domain.TransactionTypePurchase,
			domain.TransactionTypeRefund,
			domain.TransactionTypeWithdrawal,
			domain.TransactionTypeDeposit,
			domain.TransactionTypeTransfer,
		},
		Currencies: []string{"USD", "EUR", "GBP", "CAD", "JPY", "AUD", "INR", "BRL", "CNY"},
		ErrorMessages: []string{
			"Insufficient funds",
			"Card expired",
			"Invalid card number",
			"Transaction timeout",
			"Network error",
			"Card blocked",
			"Security verification failed",
			"Processing error",
		},
	}
}
