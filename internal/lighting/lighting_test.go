package lighting

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glcourse/internal/config"
)

// recorder captures uniform uploads by name.
type recorder struct {
	floats map[string]float32
	vec3s  map[string]mgl32.Vec3
	ints   map[string]int32
}

func newRecorder() *recorder {
	return &recorder{
		floats: map[string]float32{},
		vec3s:  map[string]mgl32.Vec3{},
		ints:   map[string]int32{},
	}
}

func (r *recorder) SetFloat(name string, v float32)   { r.floats[name] = v }
func (r *recorder) SetVec2(name string, v mgl32.Vec2) {}
func (r *recorder) SetVec3(name string, v mgl32.Vec3) { r.vec3s[name] = v }
func (r *recorder) SetInt(name string, v int32)       { r.ints[name] = v }
func (r *recorder) SetMat4(name string, m mgl32.Mat4) {}

func TestNewRigDefaults(t *testing.T) {
	r := NewRig(config.Default().Lighting)

	if r.Count != 4 {
		t.Errorf("expected 4 lights, got %d", r.Count)
	}
	if r.Material != DefaultMaterial() {
		t.Errorf("expected default material, got %+v", r.Material)
	}
	if r.Lights[0].Position != (mgl32.Vec3{-2, 1, -2}) || r.Lights[0].Color != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("unexpected first light %+v", r.Lights[0])
	}
	if r.Lights[3].Color != (mgl32.Vec3{0.5, 0.5, 0}) {
		t.Errorf("unexpected fourth light colour %v", r.Lights[3].Color)
	}
}

func TestApplyUniformNames(t *testing.T) {
	r := NewRig(config.Default().Lighting)
	rec := newRecorder()
	eye := mgl32.Vec3{1, 2, 3}

	r.Apply(rec, eye)

	for _, name := range []string{"_ambientK", "_diffuseK", "_specularK", "_shininess"} {
		if _, ok := rec.floats[name]; !ok {
			t.Errorf("missing float uniform %s", name)
		}
	}
	if rec.floats["_shininess"] != 10 {
		t.Errorf("expected shininess 10, got %f", rec.floats["_shininess"])
	}
	if rec.vec3s["_EyePos"] != eye {
		t.Errorf("expected eye %v, got %v", eye, rec.vec3s["_EyePos"])
	}
	if rec.vec3s["_ambientColor"] != (mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("unexpected ambient colour %v", rec.vec3s["_ambientColor"])
	}
	if rec.vec3s["_Lights[2].position"] != (mgl32.Vec3{2, 1, 2}) {
		t.Errorf("unexpected light 2 position %v", rec.vec3s["_Lights[2].position"])
	}
	for i := 0; i < MaxLights; i++ {
		if rec.ints[fmt.Sprintf("_Lights[%d].enable", i)] != 1 {
			t.Errorf("expected light %d enabled", i)
		}
	}
}

func TestDisabledLights(t *testing.T) {
	r := NewRig(config.Default().Lighting)
	r.SetCount(2)
	r.Lights[0].Enabled = false

	rec := newRecorder()
	r.Apply(rec, mgl32.Vec3{})

	want := map[string]int32{
		"_Lights[0].enable": 0, // switched off
		"_Lights[1].enable": 1,
		"_Lights[2].enable": 0, // beyond count
		"_Lights[3].enable": 0,
	}
	for name, v := range want {
		if rec.ints[name] != v {
			t.Errorf("%s = %d, want %d", name, rec.ints[name], v)
		}
	}
}

func TestSetCountClamps(t *testing.T) {
	r := &Rig{}
	r.SetCount(-3)
	if r.Count != 0 {
		t.Errorf("expected 0, got %d", r.Count)
	}
	r.SetCount(9)
	if r.Count != MaxLights {
		t.Errorf("expected %d, got %d", MaxLights, r.Count)
	}
}

func TestResetLight(t *testing.T) {
	r := NewRig(config.Default().Lighting)
	r.Lights[1] = PointLight{Position: mgl32.Vec3{9, 9, 9}}

	r.ResetLight(1)
	if r.Lights[1] != DefaultLight(1) {
		t.Errorf("light 1 not reset: %+v", r.Lights[1])
	}

	r.ResetLight(-1)
	r.ResetLight(MaxLights)
}
