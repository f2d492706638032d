package power

import (
	log "github.com/sirupsen/logrus"

	"linetemp/quantity"
)

// Params 所有功率项构造参数的并集，每种功率项只读取自己需要的字段
type Params struct {
	I       quantity.Vec // 电流 A
	TLow    quantity.Vec // RDCLow 对应的温度 C
	THigh   quantity.Vec // RDCHigh 对应的温度 C
	RDCLow  quantity.Vec // TLow 下单位长度直流电阻 Ohm.m-1
	RDCHigh quantity.Vec // THigh 下单位长度直流电阻 Ohm.m-1
	Ta      quantity.Vec // 环境温度 C
	D       quantity.Vec // 导线外径 m
	Epsilon quantity.Vec // 发射率
	Alt     quantity.Vec // 海拔 m，焦耳和辐射项不读取，留给对流散热项
}

func (p Params) fields() []quantity.Vec {
	return []quantity.Vec{p.I, p.TLow, p.THigh, p.RDCLow, p.RDCHigh, p.Ta, p.D, p.Epsilon, p.Alt}
}

// Size returns the broadcast length of every field that is set.
func (p Params) Size() (int, error) {
	var set []quantity.Vec
	for _, f := range p.fields() {
		if f != nil {
			set = append(set, f)
		}
	}
	return quantity.Size(set...)
}

// Slice 取出 [lo, hi) 范围内的档距，标量字段保持不变
func (p Params) Slice(lo, hi int) Params {
	s := func(v quantity.Vec) quantity.Vec {
		if v == nil {
			return nil
		}
		return v.Slice(lo, hi)
	}
	return Params{
		I:       s(p.I),
		TLow:    s(p.TLow),
		THigh:   s(p.THigh),
		RDCLow:  s(p.RDCLow),
		RDCHigh: s(p.RDCHigh),
		Ta:      s(p.Ta),
		D:       s(p.D),
		Epsilon: s(p.Epsilon),
		Alt:     s(p.Alt),
	}
}

// Fields is a log view of the parameters, scalars shown as plain numbers.
func (p Params) Fields() log.Fields {
	show := func(v quantity.Vec) interface{} {
		if v.IsScalar() {
			return v.Float()
		}
		return len(v)
	}
	fields := log.Fields{}
	names := []string{"I", "TLow", "THigh", "RDCLow", "RDCHigh", "Ta", "D", "Epsilon", "Alt"}
	for i, f := range p.fields() {
		if f != nil {
			fields[names[i]] = show(f)
		}
	}
	return fields
}

type field struct {
	name  string
	value quantity.Vec
}

func checkRequired(kind Kind, fields ...field) error {
	for _, f := range fields {
		if f.value == nil {
			return &MissingParamError{Term: kind, Field: f.name}
		}
	}
	return nil
}
