package payment

import (
	"errors"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const checkoutURL = "https://link.mercadopago.com.ar/transfer/checkout"

var ErrNoAlias = errors.New("barber has no payout alias")

// Reference is the transfer description shown to the barber.
func Reference(customer string) string {
	return "Barberia: " + customer
}

// TransferLink builds the Mercado Pago transfer deep link for alias.
func TransferLink(alias string, amount decimal.Decimal, reference string) (string, error) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return "", ErrNoAlias
	}
	q := url.Values{}
	q.Set("alias", alias)
	q.Set("amount", amount.String())
	q.Set("reference", reference)
	return checkoutURL + "?" + q.Encode(), nil
}
