package raytracer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jpclark/raytracer/internal/prim"
)

func glassShape(t *testing.T, transform prim.Matrix, refractiveIndex float64) *Shape {
	t.Helper()
	material := DefaultMaterial().With(func(m *Material) {
		m.Transparency = 1.0
		m.RefractiveIndex = refractiveIndex
	})
	s, err := NewShape(NewSphere(), material, transform)
	if err != nil {
		t.Fatalf("NewShape() error: %v", err)
	}
	return s
}

func TestHitSelectsLowestNonNegative(t *testing.T) {
	s, err := NewShape(NewSphere(), DefaultMaterial(), prim.Identity4())
	if err != nil {
		t.Fatalf("NewShape() error: %v", err)
	}

	tests := []struct {
		name string
		xs   Intersections
		want float64
		ok   bool
	}{
		{
			name: "all positive",
			xs:   Intersections{{T: 1, Object: s}, {T: 2, Object: s}},
			want: 1, ok: true,
		},
		{
			name: "some negative",
			xs:   Intersections{{T: -1, Object: s}, {T: 1, Object: s}},
			want: 1, ok: true,
		},
		{
			name: "all negative",
			xs:   Intersections{{T: -2, Object: s}, {T: -1, Object: s}},
			want: 0, ok: false,
		},
		{
			name: "unsorted picks lowest",
			xs:   Intersections{{T: 5, Object: s}, {T: 7, Object: s}, {T: -3, Object: s}, {T: 2, Object: s}},
			want: 2, ok: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted := tt.xs.Sort()
			got, ok := sorted.Hit()
			if ok != tt.ok {
				t.Fatalf("Hit() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.T != tt.want {
				t.Errorf("Hit() T = %v, want %v", got.T, tt.want)
			}
		})
	}
}

func TestPrepareComputationsBasics(t *testing.T) {
	s, err := NewShape(NewSphere(), DefaultMaterial(), prim.Identity4())
	if err != nil {
		t.Fatalf("NewShape() error: %v", err)
	}
	r := NewRay(prim.NewPoint(0, 0, -5), prim.NewVector(0, 0, 1))
	hit := Intersection{T: 4, Object: s}

	comps := PrepareComputations(hit, r, Intersections{hit})
	if comps.Inside {
		t.Error("Inside = true, want false for an external hit")
	}
	if diff := cmp.Diff(comps.Point, prim.NewPoint(0, 0, -1), approxOpts); diff != "" {
		t.Errorf("Point mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(comps.Eye, prim.NewVector(0, 0, -1), approxOpts); diff != "" {
		t.Errorf("Eye mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(comps.Normal, prim.NewVector(0, 0, -1), approxOpts); diff != "" {
		t.Errorf("Normal mismatch (-got +want):\n%s", diff)
	}
}

func TestPrepareComputationsHitInsideFlipsNormal(t *testing.T) {
	s, err := NewShape(NewSphere(), DefaultMaterial(), prim.Identity4())
	if err != nil {
		t.Fatalf("NewShape() error: %v", err)
	}
	r := NewRay(prim.NewPoint(0, 0, 0), prim.NewVector(0, 0, 1))
	hit := Intersection{T: 1, Object: s}

	comps := PrepareComputations(hit, r, Intersections{hit})
	if !comps.Inside {
		t.Error("Inside = false, want true")
	}
	if diff := cmp.Diff(comps.Normal, prim.NewVector(0, 0, -1), approxOpts); diff != "" {
		t.Errorf("Normal mismatch (-got +want):\n%s", diff)
	}
}

func TestPrepareComputationsOffsetsOverAndUnderPoint(t *testing.T) {
	s := glassShape(t, prim.Translation(0, 0, 1), 1.5)
	r := NewRay(prim.NewPoint(0, 0, -5), prim.NewVector(0, 0, 1))
	hit := Intersection{T: 5, Object: s}

	comps := PrepareComputations(hit, r, Intersections{hit})
	if comps.OverPoint.Z >= -prim.Epsilon/2 {
		t.Errorf("OverPoint.Z = %v, want < %v", comps.OverPoint.Z, -prim.Epsilon/2)
	}
	if comps.Point.Z <= comps.OverPoint.Z {
		t.Errorf("Point.Z = %v, want > OverPoint.Z = %v", comps.Point.Z, comps.OverPoint.Z)
	}
	if comps.UnderPoint.Z <= prim.Epsilon/2 {
		t.Errorf("UnderPoint.Z = %v, want > %v", comps.UnderPoint.Z, prim.Epsilon/2)
	}
	if comps.Point.Z >= comps.UnderPoint.Z {
		t.Errorf("Point.Z = %v, want < UnderPoint.Z = %v", comps.Point.Z, comps.UnderPoint.Z)
	}
}

func TestPrepareComputationsReflectVector(t *testing.T) {
	p, err := NewShape(NewPlane(), DefaultMaterial(), prim.Identity4())
	if err != nil {
		t.Fatalf("NewShape() error: %v", err)
	}
	r := NewRay(prim.NewPoint(0, 1, -1), prim.NewVector(0, -0.7071067811865476, 0.7071067811865476))
	hit := Intersection{T: 1.4142135623730951, Object: p}

	comps := PrepareComputations(hit, r, Intersections{hit})
	want := prim.NewVector(0, 0.7071067811865476, 0.7071067811865476)
	if diff := cmp.Diff(comps.Reflect, want, approxOpts); diff != "" {
		t.Errorf("Reflect mismatch (-got +want):\n%s", diff)
	}
}

// TestRefractiveIndicesStackWalk is the classic three-overlapping-glass-
// spheres scenario: A contains B and C, with B and C themselves
// overlapping, exercising every push/pop transition of the containers
// stack in refractiveIndices.
func TestRefractiveIndicesStackWalk(t *testing.T) {
	a := glassShape(t, prim.Scaling(2, 2, 2), 1.5)
	b := glassShape(t, prim.Translation(0, 0, -0.25), 2.0)
	c := glassShape(t, prim.Translation(0, 0, 0.25), 2.5)

	r := NewRay(prim.NewPoint(0, 0, -4), prim.NewVector(0, 0, 1))
	xs := Intersections{
		{T: 2, Object: a},
		{T: 2.75, Object: b},
		{T: 3.25, Object: c},
		{T: 4.75, Object: b},
		{T: 5.25, Object: c},
		{T: 6, Object: a},
	}

	wantN1 := []float64{1.0, 1.5, 2.0, 2.5, 2.5, 1.5}
	wantN2 := []float64{1.5, 2.0, 2.5, 2.5, 1.5, 1.0}

	for i, x := range xs {
		comps := PrepareComputations(x, r, xs)
		if comps.N1 != wantN1[i] {
			t.Errorf("xs[%d].N1 = %v, want %v", i, comps.N1, wantN1[i])
		}
		if comps.N2 != wantN2[i] {
			t.Errorf("xs[%d].N2 = %v, want %v", i, comps.N2, wantN2[i])
		}
	}
}
