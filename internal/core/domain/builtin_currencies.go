package domain

import "fmt"

// BuiltinCurrencies returns the definitions every registry starts from.
// ISO codes with a numeric code below 100 (AUD 036, BHD 048, ...) cannot be
// represented and must be supplied externally under a custom numeric code if needed.
func BuiltinCurrencies() []*CurrencyDefinition {
	return []*CurrencyDefinition{
		mustDefine("USD", 840, WithSymbol("$")),
		mustDefine("EUR", 978, WithSymbol("€")),
		mustDefine("GBP", 826, WithSymbol("£")),
		mustDefine("JPY", 392, WithSymbol("¥"), WithPrecision(0)),
		mustDefine("CHF", 756, WithSymbol("CHF")),
		mustDefine("CAD", 124, WithSymbol("C$")),
		mustDefine("CNY", 156, WithSymbol("¥")),
		mustDefine("INR", 356, WithSymbol("₹")),
		mustDefine("KWD", 414, WithSymbol("د.ك"), WithPrecision(3)),
		mustDefine("EGP", 818, WithSymbol("E£")),
		mustDefine("SEK", 752, WithSymbol("kr")),
		mustDefine("BRL", 986, WithSymbol("R$")),
		mustDefine("KRW", 410, WithSymbol("₩"), WithPrecision(0)),
	}
}

func mustDefine(alphaCode string, numericCode int, opts ...DefinitionOption) *CurrencyDefinition {
	d, err := NewCurrencyDefinition(alphaCode, numericCode, opts...)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in currency %s: %v", alphaCode, err))
	}
	return d
}
