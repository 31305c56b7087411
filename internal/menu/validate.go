package menu

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Makepad-fr/menu/internal/model"
)

// validateDraft turns raw form input into a Dish without an ID.
func validateDraft(d model.Draft) (model.Dish, error) {
	name := strings.TrimSpace(d.Name)
	description := strings.TrimSpace(d.Description)
	course := strings.TrimSpace(d.Course)
	price := strings.TrimSpace(d.Price)

	switch {
	case name == "":
		return model.Dish{}, &InvalidInputError{Field: "name", Reason: ReasonMissing}
	case description == "":
		return model.Dish{}, &InvalidInputError{Field: "description", Reason: ReasonMissing}
	case course == "":
		return model.Dish{}, &InvalidInputError{Field: "course", Reason: ReasonMissing}
	case price == "":
		return model.Dish{}, &InvalidInputError{Field: "price", Reason: ReasonMissing}
	}

	c, err := model.ParseCourse(course)
	if err != nil {
		return model.Dish{}, &InvalidInputError{Field: "course", Reason: ReasonUnknownCourse}
	}
	p, ok := parsePrice(price)
	if !ok {
		return model.Dish{}, &InvalidInputError{Field: "price", Reason: ReasonInvalidPrice}
	}

	return model.Dish{
		Name:        name,
		Description: description,
		Course:      c,
		Price:       p,
	}, nil
}

// parsePrice accepts decimal notation only; NaN and infinities never parse.
func parsePrice(s string) (float64, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return 0, false
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return f, true
}

// validateDish re-checks a dish that arrived in a snapshot and returns it with a canonical course.
// Description may be empty here; only the add form insists on one.
func validateDish(d model.Dish) (model.Dish, error) {
	if strings.TrimSpace(d.ID) == "" {
		return d, &InvalidInputError{Field: "id", Reason: ReasonMissing}
	}
	if strings.TrimSpace(d.Name) == "" {
		return d, &InvalidInputError{Field: "name", Reason: ReasonMissing}
	}
	c, err := model.ParseCourse(string(d.Course))
	if err != nil {
		return d, &InvalidInputError{Field: "course", Reason: ReasonUnknownCourse}
	}
	if math.IsNaN(d.Price) || math.IsInf(d.Price, 0) || d.Price <= 0 {
		return d, &InvalidInputError{Field: "price", Reason: ReasonInvalidPrice}
	}
	d.Course = c
	return d, nil
}
