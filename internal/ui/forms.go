package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/cargostack/internal/model"
)

// parseExtents reads three positive extents from form text.
func parseExtents(texts [3]string) ([3]float64, error) {
	var dims [3]float64
	for i, s := range texts {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || v <= 0 {
			return dims, fmt.Errorf("length, width and height must be numbers > 0")
		}
		dims[i] = v
	}
	return dims, nil
}

// parseOptionalWeight reads an optional non-negative weight; blank means
// unknown.
func parseOptionalWeight(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("weight must be blank or a number >= 0")
	}
	return &v, nil
}

// itemForm is the text state of the add/edit item dialog.
type itemForm struct {
	Label    string
	Extents  [3]string
	Weight   string
	Quantity string
}

func newItemForm(it model.Item) itemForm {
	f := itemForm{
		Label:    it.Label,
		Quantity: strconv.Itoa(it.Quantity),
	}
	for i, d := range it.Dimensions {
		f.Extents[i] = formatFloat(d)
	}
	if it.Weight != nil {
		f.Weight = formatFloat(*it.Weight)
	}
	return f
}

// apply validates the form and writes it onto base, keeping its ID.
func (f itemForm) apply(base model.Item) (model.Item, error) {
	dims, err := parseExtents(f.Extents)
	if err != nil {
		return base, err
	}
	weight, err := parseOptionalWeight(f.Weight)
	if err != nil {
		return base, err
	}
	qty, err := strconv.Atoi(strings.TrimSpace(f.Quantity))
	if err != nil || qty <= 0 {
		return base, fmt.Errorf("quantity must be a whole number > 0")
	}

	base.Label = strings.TrimSpace(f.Label)
	base.Dimensions = dims
	base.Weight = weight
	base.Quantity = qty
	return base, nil
}

// containerForm is the text state of the container editor.
type containerForm struct {
	Label       string
	Extents     [3]string
	WeightLimit string
}

func newContainerForm(c model.Container) containerForm {
	f := containerForm{Label: c.Label}
	for i, d := range c.Dimensions {
		f.Extents[i] = formatFloat(d)
	}
	if c.WeightLimit != nil {
		f.WeightLimit = formatFloat(*c.WeightLimit)
	}
	return f
}

func (f containerForm) apply(base model.Container) (model.Container, error) {
	dims, err := parseExtents(f.Extents)
	if err != nil {
		return base, err
	}
	limit, err := parseOptionalWeight(f.WeightLimit)
	if err != nil {
		return base, fmt.Errorf("weight limit must be blank or a number >= 0")
	}
	base.Label = strings.TrimSpace(f.Label)
	base.Dimensions = dims
	base.WeightLimit = limit
	return base, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatWeight(w *float64) string {
	if w == nil {
		return "-"
	}
	return formatFloat(*w)
}
