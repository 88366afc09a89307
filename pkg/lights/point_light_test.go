package lights

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPointLight_Sample(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 4, 0), core.NewVec3(1, 1, 1), 1.0)

	sample, err := light.Sample(core.NewVec3(0, 1, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sample.Direction != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected direction (0,1,0), got %v", sample.Direction)
	}
	if math.Abs(sample.Distance-3) > 1e-12 {
		t.Errorf("Expected distance 3, got %f", sample.Distance)
	}
}

func TestPointLight_SampleAtLightPosition(t *testing.T) {
	light := NewPointLight(core.NewVec3(1, 2, 3), core.NewVec3(1, 1, 1), 1.0)

	if _, err := light.Sample(core.NewVec3(1, 2, 3)); !errors.Is(err, core.ErrDegenerateVector) {
		t.Errorf("Expected ErrDegenerateVector, got %v", err)
	}
}

func TestPointLight_Validate(t *testing.T) {
	tests := []struct {
		name      string
		light     PointLight
		expectErr bool
	}{
		{"valid", NewPointLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 2), false},
		{"negative intensity", NewPointLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), -1), true},
		{"nan position", NewPointLight(core.NewVec3(math.NaN(), 0, 0), core.NewVec3(1, 1, 1), 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.light.Validate()
			if tt.expectErr && err == nil {
				t.Error("Expected error, got none")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
