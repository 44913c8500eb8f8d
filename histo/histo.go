package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Dividers returns nbins+1 evenly spaced dividers from min to max, defining
// nbins bins of the same width.
func Dividers(min, max float64, nbins int) []float64 {
	if nbins < 1 || max <= min {
		panic("gocrystal/histo.Dividers: need at least one bin and max>min")
	}
	return floats.Span(make([]float64, nbins+1), min, max)
}

// Data is a histogram. Bin i counts the values v such that dividers[i] <= v < dividers[i+1].
// Values outside the range of the dividers are not counted.
type Data struct {
	label      string
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// NewData returns a new histogram from the dividers and rawdata given.
// rawdata can be nil. In that case, an empty histogram is created.
// If a label is given, it is set for the histogram. It returns an error if there
// are less than 2 dividers, or if they are not strictly increasing.
func NewData(dividers []float64, rawdata []float64, label ...string) (*Data, error) {
	if len(dividers) < 2 {
		return nil, fmt.Errorf("gocrystal/histo.NewData: need at least 2 dividers, got %d", len(dividers))
	}
	for i := 1; i < len(dividers); i++ {
		if dividers[i] <= dividers[i-1] {
			return nil, fmt.Errorf("gocrystal/histo.NewData: dividers not strictly increasing at %d", i)
		}
	}
	d := new(Data)
	//I prefer to copy the slice to avoid somebody changing it from outside
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.reHisto(rawdata)
	}
	if len(label) > 0 {
		d.label = label[0]
	}
	return d, nil
}

// reHisto replaces the content of the histogram with the binned rawdata.
// rawdata is not modified.
func (D *Data) reHisto(rawdata []float64) {
	data := make([]float64, len(rawdata))
	copy(data, rawdata)
	sort.Float64s(data)
	//stat.Histogram panics on values out of the range of the dividers
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(data, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(data, D.dividers[0])
	data = data[mini:maxi]
	D.total = len(data)
	D.normalized = false
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
}

// Label returns the label of the histogram
func (D *Data) Label() string {
	return D.label
}

// AddData adds the given data point(s) to the histogram
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v >= D.dividers[last] {
			continue
		}
		//first divider larger than v
		j := sort.SearchFloat64s(D.dividers, v)
		if j == len(D.dividers) || D.dividers[j] != v {
			j--
		}
		D.histo[j]++
		D.total++
	}
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

// Total returns the number of values counted in the histogram.
func (D *Data) Total() int {
	return D.total
}

// Normalized returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

// Normalize normalizes the histogram so its bins add up to 1.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

// UnNormalize turns the bins of a normalized histogram back into counts.
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	if normalize {
		n = 1 / n
	}
	D.normalized = normalize
	floats.Scale(n, D.histo)
}

// Dividers returns a copy of the dividers of the histogram
func (D *Data) Dividers() []float64 {
	d := make([]float64, len(D.dividers))
	copy(d, D.dividers)
	return d
}

// Centers returns the center of each bin of the histogram
func (D *Data) Centers() []float64 {
	c := make([]float64, len(D.histo))
	for i := range c {
		c[i] = (D.dividers[i] + D.dividers[i+1]) / 2
	}
	return c
}

// Bins returns a copy of the content of the bins.
func (D *Data) Bins() []float64 {
	d := make([]float64, len(D.histo))
	copy(d, D.histo)
	return d
}

// View returns the bins of the histogram. Changes to the slice are reflected in the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

// Sum returns the sum of all bins
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

// Add returns a new histogram with the counts of D and the other histograms. All
// must have the same dividers, and none can be normalized.
func (D *Data) Add(others ...*Data) (*Data, error) {
	R, _ := NewData(D.dividers, nil, D.label)
	all := append([]*Data{D}, others...)
	for i, v := range all {
		if !floats.Equal(v.dividers, R.dividers) {
			return nil, fmt.Errorf("gocrystal/histo.Data.Add: dividers of histogram %d don't match", i)
		}
		if v.normalized {
			return nil, fmt.Errorf("gocrystal/histo.Data.Add: histogram %d is normalized", i)
		}
		floats.Add(R.histo, v.histo)
		R.total += v.total
	}
	return R, nil
}

// String returns a -hopefully- pretty string representation of
// the histogram, in 3 lines of text.
func (D *Data) String() string {
	ret := fmt.Sprintf("Label: %s, Normalized: %v, TotalData: %d\n", D.label, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

type jsonData struct {
	Label      string    `json:"label"`
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{
		Label:      D.label,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	if len(a.Dividers) < 2 || len(a.Histo) != len(a.Dividers)-1 {
		return fmt.Errorf("gocrystal/histo.Data.UnmarshalJSON: %d bins for %d dividers", len(a.Histo), len(a.Dividers))
	}
	D.label = a.Label
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}
