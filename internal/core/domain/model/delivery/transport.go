package delivery

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Transport is the mode used to carry a delivery. The empty Transport means
// "not chosen yet".
type Transport string

const (
	NoTransport Transport = ""
	Moto        Transport = "moto"
	Voiture     Transport = "voiture"
	Camion      Transport = "camion"
	Velo        Transport = "velo"
	APied       Transport = "a_pied"
	Trottinette Transport = "trottinette"
)

// Transports lists every selectable mode.
func Transports() []Transport {
	return []Transport{Moto, Voiture, Camion, Velo, APied, Trottinette}
}

// getTariffs returns the fixed price per delivery, in whole currency units.
// Modes missing from the table have no tariff.
func getTariffs() map[Transport]int64 {
	return map[Transport]int64{
		Moto:    4000,
		Voiture: 12000,
		Camion:  12000,
		Velo:    1500,
	}
}

// ParseTransport accepts the empty string and every mode of Transports().
// Any other value is rejected instead of falling back to another mode.
func ParseTransport(s string) (Transport, error) {
	if s == "" {
		return NoTransport, nil
	}
	for _, t := range Transports() {
		if string(t) == s {
			return t, nil
		}
	}
	return NoTransport, errs.NewValueIsInvalidErrorWithCause(
		"transport is invalid", fmt.Errorf("%q is not a transport mode", s),
	)
}

// Tariff returns the fixed price of the mode and whether the mode has one.
func (t Transport) Tariff() (kernel.Money, bool) {
	units, ok := getTariffs()[t]
	if !ok {
		return kernel.ZeroMoney(), false
	}
	return kernel.MoneyFromInt(units), true
}

// DefaultAmount is the tariff of the mode, or zero when it has none.
func (t Transport) DefaultAmount() kernel.Money {
	amount, _ := t.Tariff()
	return amount
}

// ResolveAmount returns explicit when it is set, otherwise the default amount.
//
// Example:
//
//	delivery.Moto.ResolveAmount(nil)        // 4000.00
//	delivery.Moto.ResolveAmount(&custom)    // custom
//	delivery.APied.ResolveAmount(nil)       // 0.00
func (t Transport) ResolveAmount(explicit *kernel.Money) kernel.Money {
	if explicit != nil {
		return *explicit
	}
	return t.DefaultAmount()
}
