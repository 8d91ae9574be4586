package entities

import (
	"errors"
	"math"
	"testing"
)

func TestParseOperationKind(t *testing.T) {
	cases := []struct {
		in   string
		want OperationKind
	}{
		{in: "CUT_AREA", want: OperationCutArea},
		{in: " linear_cut ", want: OperationLinearCut},
		{in: "Lamination with trim", want: OperationLaminationTrim},
		{in: "time", want: OperationTime},
	}
	for _, tc := range cases {
		got, err := ParseOperationKind(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("ParseOperationKind(%q) = %q, %v", tc.in, got, err)
		}
	}

	for _, bad := range []string{"", "   ", "WELDING"} {
		if _, err := ParseOperationKind(bad); !errors.Is(err, ErrUnknownOperationKind) {
			t.Fatalf("expected ErrUnknownOperationKind for %q, got %v", bad, err)
		}
	}
}

func TestOperationKindMeasures(t *testing.T) {
	want := map[OperationKind]MeasureKind{
		OperationCutArea:          MeasureArea,
		OperationLinearCut:        MeasureLength,
		OperationLaminationSimple: MeasureArea,
		OperationLaminationTrim:   MeasureArea,
		OperationChamferMilling:   MeasureLength,
		OperationGrooving:         MeasureLength,
		OperationTime:             MeasureDuration,
	}
	if len(OperationKinds()) != len(want) {
		t.Fatalf("expected %d kinds, got %d", len(want), len(OperationKinds()))
	}
	for k, m := range want {
		if k.Measure() != m {
			t.Fatalf("%s: expected %s, got %s", k, m, k.Measure())
		}
	}
	if OperationKind("X").Measure() != "" || OperationKind("X").Valid() {
		t.Fatalf("unknown kind must have no measure")
	}
}

func TestNormalizeOperation(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		op, err := NormalizeOperation(RawOperation{Kind: "GROOVING", Detail: "  ", Length: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if op.Detail != DefaultDetail || op.Quantity != 1 || op.Length != 2 {
			t.Fatalf("unexpected operation: %+v", op)
		}
	})

	t.Run("quantity coercion", func(t *testing.T) {
		for _, q := range []float64{0, -3, 2.5, math.NaN(), math.Inf(1)} {
			op, err := NormalizeOperation(RawOperation{Kind: "TIME", Quantity: q, Duration: 1})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if op.Quantity != 1 {
				t.Fatalf("quantity %v: expected 1, got %d", q, op.Quantity)
			}
		}
		op, _ := NormalizeOperation(RawOperation{Kind: "TIME", Quantity: 4, Duration: 1})
		if op.Quantity != 4 {
			t.Fatalf("expected 4, got %d", op.Quantity)
		}
	})

	t.Run("foreign measures are zeroed", func(t *testing.T) {
		op, err := NormalizeOperation(RawOperation{Kind: "TIME", Duration: 1.5, Area: 3, Length: 4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if op.Area != 0 || op.Length != 0 || op.Duration != 1.5 {
			t.Fatalf("unexpected operation: %+v", op)
		}
	})

	t.Run("area from dimensions", func(t *testing.T) {
		op, err := NormalizeOperation(RawOperation{Kind: "CUT_AREA", Length: 2, Width: 1.25})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if op.Area != 2.5 || op.Length != 0 {
			t.Fatalf("unexpected operation: %+v", op)
		}
	})

	t.Run("negative measures clamp", func(t *testing.T) {
		op, err := NormalizeOperation(RawOperation{Kind: "LINEAR_CUT", Length: -4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if op.Length != 0 || op.MeasureValue() != 0 {
			t.Fatalf("unexpected operation: %+v", op)
		}
	})

	t.Run("detail is folded to one line", func(t *testing.T) {
		op, err := NormalizeOperation(RawOperation{Kind: "TIME", Duration: 1, Detail: " panel\r\nOrder total: 999\n"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if op.Detail != "panel Order total: 999" {
			t.Fatalf("unexpected detail: %q", op.Detail)
		}
	})

	t.Run("kind required", func(t *testing.T) {
		if _, err := NormalizeOperation(RawOperation{Length: 1}); !errors.Is(err, ErrUnknownOperationKind) {
			t.Fatalf("expected ErrUnknownOperationKind, got %v", err)
		}
	})
}

func TestOperationMeasureValue(t *testing.T) {
	op := Operation{Kind: OperationCutArea, Length: 5}
	if op.MeasureValue() != 0 {
		t.Fatalf("area operation without area must measure 0")
	}
	op = Operation{Kind: OperationChamferMilling, Length: -1}
	if op.MeasureValue() != 0 {
		t.Fatalf("negative length must clamp to 0")
	}
	if (Operation{Quantity: 0}).EffectiveQuantity() != 1 {
		t.Fatalf("expected quantity floor of 1")
	}
}
