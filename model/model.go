package model

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrEmptyScenario = errors.New("model: scenario has no spans")

// Span 一个档距（或一个测站）的导线与环境参数，温度单位为摄氏度
type Span struct {
	Name       string  `json:"name" yaml:"name"`
	Current    float64 `json:"current" yaml:"current"`       // 电流 A
	TLow       float64 `json:"t_low" yaml:"t_low"`           // 低温标定点 C
	THigh      float64 `json:"t_high" yaml:"t_high"`         // 高温标定点 C
	RDCLow     float64 `json:"rdc_low" yaml:"rdc_low"`       // 低温直流电阻 Ohm/m
	RDCHigh    float64 `json:"rdc_high" yaml:"rdc_high"`     // 高温直流电阻 Ohm/m
	Ambient    float64 `json:"ambient" yaml:"ambient"`       // 环境温度 C
	Diameter   float64 `json:"diameter" yaml:"diameter"`     // 外径 m
	Emissivity float64 `json:"emissivity" yaml:"emissivity"` // 发射率
	Altitude   float64 `json:"altitude" yaml:"altitude"`     // 海拔 m，当前功率项不使用
}

type Scenario struct {
	Name  string `json:"name" yaml:"name"`
	Spans []Span `json:"spans" yaml:"spans"`
}

func (s *Scenario) Validate() error {
	if len(s.Spans) == 0 {
		return ErrEmptyScenario
	}
	return nil
}

// LoadScenario 从 yaml 文件读取计算工况
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// SpanResult 平衡温度及该温度下各功率项的值
type SpanResult struct {
	Name        string             `json:"name"`
	Temperature float64            `json:"temperature"`
	Terms       map[string]float64 `json:"terms"` // W/m，按功率项名称
	Iterations  int                `json:"iterations"`
	Converged   bool               `json:"converged"`
}

type Solution struct {
	Scenario string       `json:"scenario"`
	Spans    []SpanResult `json:"spans"`
	Elapsed  string       `json:"elapsed"`
}

// 空气物性请求
type AirRequest struct {
	Temperature []float64 `json:"temperature"`
	Altitude    []float64 `json:"altitude"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const (
	MsgSolve  = "solve"
	MsgSolved = "solved"
	MsgAir    = "air"
	MsgError  = "error"
)
