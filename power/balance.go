package power

import (
	"linetemp/quantity"
)

// Balance is the net heat balance of a conductor: the sum of the gains
// minus the sum of the losses. It is zero at thermal equilibrium.
// A Balance is itself a Term.
type Balance struct {
	gains  []Term
	losses []Term
}

// NewBalance builds a balance whose gains and losses are constructed from p.
func NewBalance(p Params, gains, losses []Kind) (*Balance, error) {
	g, err := Build(p, gains...)
	if err != nil {
		return nil, err
	}
	l, err := Build(p, losses...)
	if err != nil {
		return nil, err
	}
	return &Balance{gains: g, losses: l}, nil
}

// Gain 加入发热项
func (b *Balance) Gain(ts ...Term) *Balance {
	b.gains = append(b.gains, ts...)
	return b
}

// Loss 加入散热项
func (b *Balance) Loss(ts ...Term) *Balance {
	b.losses = append(b.losses, ts...)
	return b
}

func (b *Balance) Value(t quantity.Vec) (quantity.Vec, error) {
	return b.sum(t, func(term Term, t quantity.Vec) (quantity.Vec, error) {
		return term.Value(t)
	})
}

func (b *Balance) Derivative(t quantity.Vec) (quantity.Vec, error) {
	return b.sum(t, func(term Term, t quantity.Vec) (quantity.Vec, error) {
		return term.Derivative(t)
	})
}

func (b *Balance) sum(t quantity.Vec, eval func(Term, quantity.Vec) (quantity.Vec, error)) (quantity.Vec, error) {
	acc := make(quantity.Vec, len(t))
	var err error
	for _, term := range b.gains {
		v, e := eval(term, t)
		if e != nil {
			return nil, e
		}
		if acc, err = quantity.Add(acc, v); err != nil {
			return nil, err
		}
	}
	for _, term := range b.losses {
		v, e := eval(term, t)
		if e != nil {
			return nil, e
		}
		if acc, err = quantity.Sub(acc, v); err != nil {
			return nil, err
		}
	}
	return acc, nil
}
