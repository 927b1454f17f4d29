package domain

// Currency describes one supported currency code.
type Currency struct {
	Symbol string
	Name   string
}

// Currencies is the fixed table of supported currency codes.
var Currencies = map[string]Currency{
	"USD": {Symbol: "$", Name: "US Dollar"},
	"EUR": {Symbol: "€", Name: "Euro"},
	"GBP": {Symbol: "£", Name: "British Pound"},
	"JPY": {Symbol: "¥", Name: "Japanese Yen"},
	"CAD": {Symbol: "C$", Name: "Canadian Dollar"},
	"AUD": {Symbol: "A$", Name: "Australian Dollar"},
	"CHF": {Symbol: "CHF", Name: "Swiss Franc"},
	"SEK": {Symbol: "kr", Name: "Swedish Krona"},
	"NOK": {Symbol: "kr", Name: "Norwegian Krone"},
	"DKK": {Symbol: "kr", Name: "Danish Krone"},
	"PLN": {Symbol: "zł", Name: "Polish Złoty"},
	"CZK": {Symbol: "Kč", Name: "Czech Koruna"},
	"HUF": {Symbol: "Ft", Name: "Hungarian Forint"},
	"RUB": {Symbol: "₽", Name: "Russian Ruble"},
	"BRL": {Symbol: "R$", Name: "Brazilian Real"},
	"MXN": {Symbol: "$", Name: "Mexican Peso"},
	"INR": {Symbol: "₹", Name: "Indian Rupee"},
	"KRW": {Symbol: "₩", Name: "South Korean Won"},
	"CNY": {Symbol: "¥", Name: "Chinese Yuan"},
	"SGD": {Symbol: "S$", Name: "Singapore Dollar"},
	"NZD": {Symbol: "NZ$", Name: "New Zealand Dollar"},
}

// SymbolFor resolves a currency code to its display symbol. Unknown codes
// fall back to the euro sign.
func SymbolFor(code string) string {
	if cur, ok := Currencies[code]; ok {
		return cur.Symbol
	}
	return "€"
}
