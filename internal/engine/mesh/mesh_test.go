package mesh

import (
	"testing"
	"unsafe"

	"github.com/Faultbox/glcourse/pkg/procgen"
)

func TestVertexLayout(t *testing.T) {
	// The attribute pointers assume a tightly packed 8-float vertex.
	if vertexSize != 32 {
		t.Fatalf("vertex size = %d, want 32", vertexSize)
	}
	if off := unsafe.Offsetof(procgen.Vertex{}.Normal); off != 12 {
		t.Errorf("normal offset = %d, want 12", off)
	}
	if off := unsafe.Offsetof(procgen.Vertex{}.UV); off != 24 {
		t.Errorf("uv offset = %d, want 24", off)
	}
}

func TestDrawModeString(t *testing.T) {
	if DrawTriangles.String() != "triangles" || DrawPoints.String() != "points" {
		t.Errorf("unexpected names %s, %s", DrawTriangles, DrawPoints)
	}
	if DrawMode(7).String() != "DrawMode(7)" {
		t.Errorf("unexpected name for unknown mode: %s", DrawMode(7))
	}
}
