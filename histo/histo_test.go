package histo

import (
	"encoding/json"
	"testing"
)

func TestHisto(Te *testing.T) {
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	D, err := NewData([]float64{0, 1, 2, 3, 4, 8}, rawdata, "test")
	if err != nil {
		Te.Fatal(err)
	}
	//44, 32 and 8 are out of range.
	if D.Total() != len(rawdata)-3 || D.Sum() != float64(len(rawdata)-3) {
		Te.Errorf("expected %d values, got %d (sum %f)", len(rawdata)-3, D.Total(), D.Sum())
	}
	want := []float64{2, 6, 2, 7, 9}
	for i, v := range D.View() {
		if v != want[i] {
			Te.Errorf("bin %d: got %f, want %f", i, v, want[i])
		}
	}
	D.AddData(0.5, 3.99, 100)
	if D.View()[0] != 3 || D.View()[3] != 8 || D.Total() != 28 {
		Te.Errorf("AddData failed: %v", D)
	}
	D.Normalize()
	if s := D.Sum(); s < 1-1e-9 || s > 1+1e-9 {
		Te.Errorf("normalized histogram adds up to %f", s)
	}
	D.UnNormalize()
	if v := D.View()[0]; v < 3-1e-9 || v > 3+1e-9 {
		Te.Errorf("UnNormalize failed: %v", D)
	}
}

func TestHistoBadDividers(Te *testing.T) {
	if _, err := NewData([]float64{1}, nil); err == nil {
		Te.Error("a single divider was accepted")
	}
	if _, err := NewData([]float64{0, 2, 1}, nil); err == nil {
		Te.Error("unsorted dividers were accepted")
	}
}

func TestHistoAddAndJSON(Te *testing.T) {
	div := Dividers(0, 4, 4)
	if len(div) != 5 || div[4] != 4 {
		Te.Fatalf("bad dividers %v", div)
	}
	a, _ := NewData(div, []float64{0.5, 1.5})
	b, _ := NewData(div, []float64{1.5, 3.5})
	c, err := a.Add(b)
	if err != nil {
		Te.Fatal(err)
	}
	if c.Total() != 4 || c.View()[1] != 2 {
		Te.Errorf("bad sum of histograms: %v", c)
	}
	j, err := json.Marshal(c)
	if err != nil {
		Te.Fatal(err)
	}
	d := new(Data)
	if err = json.Unmarshal(j, d); err != nil {
		Te.Fatal(err)
	}
	if d.String() != c.String() {
		Te.Errorf("JSON round trip changed the histogram:\n%s\n%s", c, d)
	}
}
