package geometry

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestInitializationError_Wrapping(t *testing.T) {
	list := NewShapeList(
		NewSphere(core.NewVec3(0, 0, 0), 1, 0),
		NewShapeList(NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), -1)),
	)

	err := list.Init(testData())
	if !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("Expected ErrInvalidIndex, got %v", err)
	}
	var initErr *InitializationError
	if !errors.As(err, &initErr) {
		t.Fatalf("Expected InitializationError in chain, got %v", err)
	}
	if initErr.Shape != "box" || initErr.Index != -1 {
		t.Errorf("Unexpected error details: %+v", initErr)
	}
}

func TestInitializationError_MissingChild(t *testing.T) {
	err := NewShapeList(nil).Init(testData())
	if !errors.Is(err, ErrMissingChild) {
		t.Errorf("Expected ErrMissingChild, got %v", err)
	}
}
