package material

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestMaterial_Presets(t *testing.T) {
	matte := NewMatte(core.NewVec3(1, 1, 1))
	if matte.Specular != 0 || matte.Reflectivity != 0 {
		t.Errorf("Matte should have no specular or reflection, got %+v", matte)
	}
	if matte.IsReflective() {
		t.Error("Matte should not be reflective")
	}

	mirror := NewMirror(core.NewVec3(1, 1, 1), 1.0)
	if !mirror.IsReflective() {
		t.Error("Mirror should be reflective")
	}

	for name, m := range map[string]*Material{"matte": matte, "plastic": NewPlastic(core.NewVec3(0.8, 0.1, 0.1), 32), "mirror": mirror} {
		if err := m.Validate(); err != nil {
			t.Errorf("Preset %s failed validation: %v", name, err)
		}
	}
}

func TestMaterial_Validate(t *testing.T) {
	white := core.NewVec3(1, 1, 1)

	tests := []struct {
		name     string
		material *Material
	}{
		{"nil material", nil},
		{"negative diffuse", NewMaterial(white, -0.1, 0, 1, 0)},
		{"negative specular", NewMaterial(white, 1, -1, 1, 0)},
		{"negative shininess", NewMaterial(white, 1, 0, -2, 0)},
		{"reflectivity above one", NewMaterial(white, 1, 0, 1, 1.5)},
		{"reflectivity below zero", NewMaterial(white, 1, 0, 1, -0.5)},
		{"negative color", NewMaterial(core.NewVec3(-1, 0, 0), 1, 0, 1, 0)},
		{"nan color", NewMaterial(core.NewVec3(math.NaN(), 0, 0), 1, 0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.material.Validate(); !errors.Is(err, ErrInvalidMaterial) {
				t.Errorf("Expected ErrInvalidMaterial, got %v", err)
			}
		})
	}
}
