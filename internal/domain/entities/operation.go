package entities

import (
	"errors"
	"math"
	"strings"
)

// MeasureKind is the physical quantity an operation rate applies to.
type MeasureKind string

const (
	MeasureArea     MeasureKind = "area"     // m²
	MeasureLength   MeasureKind = "length"   // linear meters
	MeasureDuration MeasureKind = "duration" // hours
)

// OperationKind identifies a billable operation. The set is closed.
type OperationKind string

const (
	OperationCutArea          OperationKind = "CUT_AREA"
	OperationLinearCut        OperationKind = "LINEAR_CUT"
	OperationLaminationSimple OperationKind = "LAMINATION_SIMPLE"
	OperationLaminationTrim   OperationKind = "LAMINATION_TRIM"
	OperationChamferMilling   OperationKind = "CHAMFER_MILLING"
	OperationGrooving         OperationKind = "GROOVING"
	OperationTime             OperationKind = "TIME"
)

// DefaultDetail replaces a blank operation label.
const DefaultDetail = "—"

var ErrUnknownOperationKind = errors.New("unknown operation kind")

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// SingleLine trims s and folds line breaks into spaces. Labels end up on one
// line of the text export.
func SingleLine(s string) string {
	return strings.TrimSpace(lineBreaks.Replace(s))
}

type kindInfo struct {
	name    string
	measure MeasureKind
}

var operationKinds = map[OperationKind]kindInfo{
	OperationCutArea:          {name: "Cut", measure: MeasureArea},
	OperationLinearCut:        {name: "Linear cut", measure: MeasureLength},
	OperationLaminationSimple: {name: "Simple lamination", measure: MeasureArea},
	OperationLaminationTrim:   {name: "Lamination with trim", measure: MeasureArea},
	OperationChamferMilling:   {name: "Chamfer milling", measure: MeasureLength},
	OperationGrooving:         {name: "Grooving", measure: MeasureLength},
	OperationTime:             {name: "Time", measure: MeasureDuration},
}

// OperationKinds lists every kind in rate-table order.
func OperationKinds() []OperationKind {
	return []OperationKind{
		OperationCutArea,
		OperationLinearCut,
		OperationLaminationSimple,
		OperationLaminationTrim,
		OperationChamferMilling,
		OperationGrooving,
		OperationTime,
	}
}

func (k OperationKind) Valid() bool {
	_, ok := operationKinds[k]
	return ok
}

// Measure returns "" for an unknown kind.
func (k OperationKind) Measure() MeasureKind {
	return operationKinds[k].measure
}

func (k OperationKind) DisplayName() string {
	if info, ok := operationKinds[k]; ok {
		return info.name
	}
	return string(k)
}

// ParseOperationKind accepts a code ("LINEAR_CUT") or a display name ("Linear cut"), case-insensitively.
func ParseOperationKind(s string) (OperationKind, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrUnknownOperationKind
	}
	for _, k := range OperationKinds() {
		if strings.EqualFold(string(k), s) || strings.EqualFold(operationKinds[k].name, s) {
			return k, nil
		}
	}
	return "", ErrUnknownOperationKind
}

// Operation is one billable line of an order. Only the measure matching
// Kind.Measure() is populated; the others are zero.
type Operation struct {
	Kind     OperationKind `json:"kind"`
	Detail   string        `json:"detail"`
	Quantity int           `json:"quantity"`
	Area     float64       `json:"area,omitempty"`
	Length   float64       `json:"length,omitempty"`
	Duration float64       `json:"duration,omitempty"`
}

// MeasureValue returns the populated measure, clamped to >= 0.
func (o Operation) MeasureValue() float64 {
	var v float64
	switch o.Kind.Measure() {
	case MeasureArea:
		v = o.Area
	case MeasureLength:
		v = o.Length
	case MeasureDuration:
		v = o.Duration
	}
	return clampMeasure(v)
}

// EffectiveQuantity treats anything below 1 as 1.
func (o Operation) EffectiveQuantity() int {
	if o.Quantity < 1 {
		return 1
	}
	return o.Quantity
}

// RawOperation is operator input before coercion. Area may be given
// directly or as Length × Width.
type RawOperation struct {
	Kind     string  `json:"kind"`
	Detail   string  `json:"detail"`
	Quantity float64 `json:"quantity"`
	Area     float64 `json:"area"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Duration float64 `json:"duration"`
}

// NormalizeOperation is the only place raw input is coerced.
func NormalizeOperation(raw RawOperation) (Operation, error) {
	kind, err := ParseOperationKind(raw.Kind)
	if err != nil {
		return Operation{}, err
	}

	op := Operation{
		Kind:     kind,
		Detail:   SingleLine(raw.Detail),
		Quantity: normalizeQuantity(raw.Quantity),
	}
	if op.Detail == "" {
		op.Detail = DefaultDetail
	}

	switch kind.Measure() {
	case MeasureArea:
		area := clampMeasure(raw.Area)
		if area == 0 {
			area = clampMeasure(raw.Length) * clampMeasure(raw.Width)
		}
		op.Area = area
	case MeasureLength:
		op.Length = clampMeasure(raw.Length)
	case MeasureDuration:
		op.Duration = clampMeasure(raw.Duration)
	}
	return op, nil
}

func normalizeQuantity(q float64) int {
	if math.IsNaN(q) || math.IsInf(q, 0) || q < 1 || q != math.Trunc(q) {
		return 1
	}
	if q > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(q)
}

func clampMeasure(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
