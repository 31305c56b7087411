package menu

import "github.com/Makepad-fr/menu/internal/model"

// CourseGroup is one section of the menu.
type CourseGroup struct {
	Course model.Course
	Dishes []model.Dish
}

// GroupByCourse buckets dishes by course. Buckets appear in order of each
// course's first dish; dishes keep their relative order.
func GroupByCourse(dishes []model.Dish) []CourseGroup {
	groups := []CourseGroup{}
	index := make(map[model.Course]int, len(model.Courses()))
	for _, d := range dishes {
		i, ok := index[d.Course]
		if !ok {
			i = len(groups)
			index[d.Course] = i
			groups = append(groups, CourseGroup{Course: d.Course})
		}
		groups[i].Dishes = append(groups[i].Dishes, d)
	}
	return groups
}

// FilterByCourse returns dishes unchanged for All, otherwise the dishes of the selected course.
func FilterByCourse(dishes []model.Dish, sel model.Selector) []model.Dish {
	c, ok := sel.Course()
	if !ok {
		return dishes
	}
	out := make([]model.Dish, 0, len(dishes))
	for _, d := range dishes {
		if d.Course == c {
			out = append(out, d)
		}
	}
	return out
}

// CountByCourse tallies dishes per course.
func CountByCourse(dishes []model.Dish) map[model.Course]int {
	counts := make(map[model.Course]int, len(model.Courses()))
	for _, d := range dishes {
		counts[d.Course]++
	}
	return counts
}

type CourseAverage struct {
	Course  model.Course
	Count   int
	Average float64
}

// Statistics summarises menu prices. Values keep full precision.
type Statistics struct {
	TotalItems     int
	OverallAverage float64
	PerCourse      []CourseAverage
}

// ComputeStatistics averages prices overall and per course. Courses with no
// dishes are left out and an empty menu averages to zero.
func ComputeStatistics(dishes []model.Dish) Statistics {
	type acc struct {
		count int
		sum   float64
	}
	perCourse := make(map[model.Course]*acc, len(model.Courses()))
	var total float64
	for _, d := range dishes {
		total += d.Price
		a, ok := perCourse[d.Course]
		if !ok {
			a = &acc{}
			perCourse[d.Course] = a
		}
		a.count++
		a.sum += d.Price
	}

	stats := Statistics{
		TotalItems: len(dishes),
		PerCourse:  []CourseAverage{},
	}
	if len(dishes) > 0 {
		stats.OverallAverage = total / float64(len(dishes))
	}
	for _, c := range model.Courses() {
		a, ok := perCourse[c]
		if !ok {
			continue
		}
		stats.PerCourse = append(stats.PerCourse, CourseAverage{
			Course:  c,
			Count:   a.count,
			Average: a.sum / float64(a.count),
		})
	}
	return stats
}
