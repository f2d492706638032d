package calculator

import (
	"context"
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"linetemp/model"
	"linetemp/power"
	"linetemp/quantity"
)

var (
	gains  = []power.Kind{power.Joule}
	losses = []power.Kind{power.Radiative}
)

// Calculator 求解稳态热平衡：焦耳发热 = 辐射散热
type Calculator struct {
	cfg Config
	e   *Executor
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{
		cfg: cfg,
		e:   NewExecutor(cfg.Workers, cfg.ChunkSize),
	}
}

// ParamsFromSpans 将档距列表转换为按字段排列的数组参数
func ParamsFromSpans(spans []model.Span) power.Params {
	n := len(spans)
	p := power.Params{
		I:       make(quantity.Vec, n),
		TLow:    make(quantity.Vec, n),
		THigh:   make(quantity.Vec, n),
		RDCLow:  make(quantity.Vec, n),
		RDCHigh: make(quantity.Vec, n),
		Ta:      make(quantity.Vec, n),
		D:       make(quantity.Vec, n),
		Epsilon: make(quantity.Vec, n),
		Alt:     make(quantity.Vec, n),
	}
	for i, s := range spans {
		p.I[i] = s.Current
		p.TLow[i] = s.TLow
		p.THigh[i] = s.THigh
		p.RDCLow[i] = s.RDCLow
		p.RDCHigh[i] = s.RDCHigh
		p.Ta[i] = s.Ambient
		p.D[i] = s.Diameter
		p.Epsilon[i] = s.Emissivity
		p.Alt[i] = s.Altitude
	}
	return p
}

// Solve computes the equilibrium conductor temperature of every span.
// Spans that hit the iteration cap are reported with Converged=false
// rather than failing the whole scenario.
func (c *Calculator) Solve(ctx context.Context, s *model.Scenario) (*model.Solution, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	params := ParamsFromSpans(s.Spans)
	results := make([]model.SpanResult, len(s.Spans))

	cost, err := c.e.dispatchTask(ctx, len(s.Spans), func(ctx context.Context, t task) error {
		return c.solveRange(ctx, params.Slice(t.start, t.end), s.Spans[t.start:t.end], results[t.start:t.end])
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"scenario": s.Name,
		"spans":    len(s.Spans),
		"cost":     cost,
	}).Info("稳态温度计算完成")
	return &model.Solution{
		Scenario: s.Name,
		Spans:    results,
		Elapsed:  cost.String(),
	}, nil
}

func (c *Calculator) solveRange(ctx context.Context, p power.Params, spans []model.Span, out []model.SpanResult) error {
	g, err := power.Build(p, gains...)
	if err != nil {
		return spanError(spans, err)
	}
	l, err := power.Build(p, losses...)
	if err != nil {
		return spanError(spans, err)
	}
	balance := (&power.Balance{}).Gain(g...).Loss(l...)

	// 平衡函数是凹函数，有两个根，初值须落在上方根的右侧
	t0 := quantity.Map(func(ta float64) float64 {
		return ta + c.cfg.InitialOffset
	}, p.Ta)
	t0, err = BracketRight(balance, t0, math.Max(c.cfg.InitialOffset, 1))
	if err != nil {
		return spanError(spans, err)
	}
	res, err := Newton(ctx, balance, t0, c.cfg.options())
	if errors.Is(err, ErrNotConverged) {
		log.WithFields(p.Fields()).WithFields(log.Fields{
			"first": spans[0].Name,
			"spans": len(spans),
		}).Warn(err)
	} else if err != nil {
		return spanError(spans, err)
	}
	df, err := balance.Derivative(res.T)
	if err != nil {
		return spanError(spans, err)
	}
	for _, i := range rejectUnphysical(res, df, p.Ta, c.cfg.Tolerance) {
		log.WithFields(p.Slice(i, i+1).Fields()).WithFields(log.Fields{
			"span":       spans[i].Name,
			"T":          res.T[i],
			"derivative": df.At(i),
		}).Warn(ErrUnphysicalRoot)
	}

	// 平衡温度下各功率项的值
	kinds := append(append([]power.Kind{}, gains...), losses...)
	terms := append(append([]power.Term{}, g...), l...)
	values := make([]quantity.Vec, len(terms))
	for k, term := range terms {
		if values[k], err = term.Value(res.T); err != nil {
			return err
		}
	}
	for i := range out {
		out[i] = model.SpanResult{
			Name:        spans[i].Name,
			Temperature: res.T[i],
			Terms:       make(map[string]float64, len(terms)),
			Iterations:  res.Iterations[i],
			Converged:   res.Converged[i],
		}
		for k, kind := range kinds {
			out[i].Terms[string(kind)] = values[k].At(i)
		}
	}
	return nil
}

// rejectUnphysical marks converged elements that sit below ambient or where
// the balance is not decreasing as not converged, and returns their indices.
func rejectUnphysical(res *Result, df, ta quantity.Vec, tol float64) []int {
	var bad []int
	for i := range res.T {
		if !res.Converged[i] {
			continue
		}
		if res.T[i] < ta.At(i)-tol || df.At(i) >= 0 {
			res.Converged[i] = false
			bad = append(bad, i)
		}
	}
	return bad
}

// spanError 尽量定位到出错的档距
func spanError(spans []model.Span, err error) error {
	name := spans[0].Name
	var ce *power.InvalidCalibrationError
	if errors.As(err, &ce) && ce.Index < len(spans) {
		name = spans[ce.Index].Name
	}
	return fmt.Errorf("span %s: %w", name, err)
}
