package hefesto

import (
	"fmt"
	"testing"
)

func TestInteractionAlignedRows(Te *testing.T) {
	//full n-column rows; only the entries right of the diagonal count
	lines := []string{
		"py alm gr",
		"0.0 0.0 30.0",
		"0.0 0.0 0.0",
		"0.0 0.0 0.0",
		"Volume",
		"0.0 0.0 0.4",
		"0.0 0.0 0.0",
	}
	in, err := ReadInteraction("gt", lines)
	if err != nil {
		Te.Fatal(err)
	}
	if in.N() != 3 {
		Te.Fatalf("got %d endmembers, want 3", in.N())
	}
	if in.Energy(0, 2) != 30.0 || in.Volume(0, 2) != 0.4 {
		Te.Errorf("py-gr: E=%f V=%f", in.Energy(0, 2), in.Volume(0, 2))
	}
	if in.EnergyRaw(0, 2) != "30.0" || in.EnergyRaw(2, 0) != "30.0" {
		Te.Errorf("raw tokens not mirrored: %q %q", in.EnergyRaw(0, 2), in.EnergyRaw(2, 0))
	}
	fmt.Println("garnet test matrix read")
}

func TestInteractionShrunkenRows(Te *testing.T) {
	//each row holds just the entries right of the diagonal
	lines := []string{
		"fo fa wa",
		"7.81 5.0",
		"3.0",
		"Volume",
		"0.3 0.0",
		"0.1",
	}
	in, err := ReadInteraction("olx", lines)
	if err != nil {
		Te.Fatal(err)
	}
	if in.Energy(0, 1) != 7.81 || in.Energy(0, 2) != 5.0 || in.Energy(1, 2) != 3.0 {
		Te.Errorf("energies: %f %f %f", in.Energy(0, 1), in.Energy(0, 2), in.Energy(1, 2))
	}
	if in.Volume(0, 1) != 0.3 || in.Volume(1, 2) != 0.1 {
		Te.Errorf("volumes: %f %f", in.Volume(0, 1), in.Volume(1, 2))
	}
}

//Both matrices must be symmetric for every valid index pair, and the
//lower triangle must come from the mirror, never from the file.
func TestInteractionSymmetry(Te *testing.T) {
	lines := []string{
		"a b c d",
		"0.0 1.5 2.5 3.5",
		"0.0 0.0 4.5 5.5",
		"0.0 0.0 0.0 6.5",
		"Volume",
		"0.0 0.1 0.2 0.3",
		"0.0 0.0 0.4 0.5",
		"0.0 0.0 0.0 0.6",
	}
	in, err := ReadInteraction("t", lines)
	if err != nil {
		Te.Fatal(err)
	}
	n := in.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if in.Energy(i, j) != in.Energy(j, i) {
				Te.Errorf("energy asymmetric at %d,%d", i, j)
			}
			if in.Volume(i, j) != in.Volume(j, i) {
				Te.Errorf("volume asymmetric at %d,%d", i, j)
			}
		}
	}
}

func TestInteractionNoVolumeBlock(Te *testing.T) {
	lines := []string{
		"fo fa",
		"0.0 7.81",
	}
	in, err := ReadInteraction("ol", lines)
	if err != nil {
		Te.Fatal(err)
	}
	if in.Energy(0, 1) != 7.81 {
		Te.Errorf("energy: %f", in.Energy(0, 1))
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if in.Volume(i, j) != 0 {
				Te.Error("a missing Volume block means zero volume interaction")
			}
		}
	}
}

func TestInteractionHeaderOrder(Te *testing.T) {
	lines := []string{"odi di he cen cats jd", "0.0 0.0 0.0 0.0 0.0 0.0"}
	in, err := ReadInteraction("cpx", lines)
	if err != nil {
		Te.Fatal(err)
	}
	want := []string{"odi", "di", "he", "cen", "cats", "jd"}
	for i, em := range want {
		if in.Endmembers[i] != em {
			Te.Fatalf("endmember %d: got %s, want %s", i, in.Endmembers[i], em)
		}
	}
}

func TestInteractionEmpty(Te *testing.T) {
	_, err := ReadInteraction("x", nil)
	if err == nil {
		Te.Fatal("expected an error for an empty file")
	}
	if _, ok := err.(*MalformedRecordError); !ok {
		Te.Fatalf("got %T, want *MalformedRecordError", err)
	}
}

func TestInteractionBadValue(Te *testing.T) {
	lines := []string{"fo fa", "0.0 oops"}
	_, err := ReadInteraction("ol", lines)
	if err == nil {
		Te.Fatal("expected an error for a non-numeric entry")
	}
	if _, ok := err.(*InvalidFieldError); !ok {
		Te.Fatalf("got %T, want *InvalidFieldError", err)
	}
	fmt.Println("rejected as expected:", err)
}
